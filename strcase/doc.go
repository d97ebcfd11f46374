// Package strcase provides the key-rename functions most often installed as
// serialize/deserialize key transforms.
//
// Key functions:
//   - CamelCase: my_camel_string -> myCamelString
//   - SnakeCase: MyCamelString -> my_camel_string
//   - UnderscoreCase: myCamelCase -> my_camel_case, also folding dashes and spaces
//   - DashCase: my_camelCase -> my-camel-case
//   - Lookup: resolves one of the above by name for configuration files
package strcase
