// Package pave (Parse And Validate Everything) provides composable validators
// for decoded data, along with the parsers that decode raw sources into it.
//
// A validator checks a value, as produced by decoding JSON or YAML, and
// either returns a normalized value or fails with a *ValidationError whose
// message names the exact location of the problem. Validators are small
// values built by constructors and combined into a tree:
//
//	user := pave.Object(pave.Fields{
//		pave.Field("id", pave.UUID()),
//		pave.Field("name", pave.String(pave.StringOpts{Min: pave.Ptr(1)})),
//		pave.Field("age", pave.Optional(pave.Integer(pave.IntegerOpts{Min: pave.Ptr[int64](0)}))),
//		pave.Field("role", pave.DefaultValue("member", pave.OneOf("admin", "member"))),
//	})
//
//	value, err := user.Validate(decoded, "user")
//	// err: [user.name] has fewer characters (0) than the allowed minimum (1)
//
// The tree is built once and may be used from any number of goroutines.
//
// Locations are written as a path label: the root label given by the
// caller, extended with .field for object fields, [i] for array items and
// .@alternative(i) for the branches of Alternatives.
//
// The package provides built-in parsers for common data sources,
// such as:
//   - JSON (from byte slices, strings or json.RawMessage)
//   - YAML (from byte slices, registered on demand)
//   - HTTP requests (JSON body or query parameters)
//   - String maps (from map[string]string or map[string]any)
//
// To use the parsers, you may use the exported functions:
//   - Parse(): decode with the global registry and validate
//   - WithParser(): curry the global registry with a named parser
//   - RegisterParser(): register a custom parser for a specific source type
//
// Or you may build your own ParserRegistry, and a Schema to tie it to a
// validator tree and a logger.
package pave
