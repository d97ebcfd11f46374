// Package schema declares members from YAML files instead of Go code.
//
// A schema file lists types by their registered name together with the
// members to declare on them:
//
//	version: "1"
//	types:
//	  - type: Employee
//	    inherit: Person
//	    members:
//	      - name: Salary
//	        mode: [serialize, deserialize]   # or "auto", the default
//	        shape: as                         # plain|as|array|map|json|using
//	        of: number
//	        key: salary_cents
//	      - name: Notes
//	        shape: json
//	        transform_keys: false
//
// Type names, of= element names and using= converter names are resolved
// through the registry (metadata.Registry.RegisterName and
// RegisterConverter); primitive names (string, number, boolean, date,
// regexp) are always available.
//
// Validate reports every problem of a file as diagnostics; Apply validates
// and then declares the members. Export goes the other way and renders
// the declarations of a registry as a File.
package schema
