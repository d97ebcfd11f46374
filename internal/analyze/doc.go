// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of the exported struct types of a set of packages,
// without compiling or running them. The model backs two schema tools:
//
//   - Scaffold writes a schema file declaring every field the way struct
//     tags would infer it.
//   - Check resolves the types and members a schema file names against
//     the source, which the runtime registry cannot do outside the
//     program.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: a named struct type and its fields
//   - FieldInfo: field name, tags, embedding and the shape it serializes as
package analyze
