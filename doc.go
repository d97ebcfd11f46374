// Package cerialize converts between plain data trees and typed Go values,
// driven by per-member declarations kept in a metadata.Registry.
//
// A data tree is what encoding/json produces when decoding into an any:
// nil, string, float64, bool, []any and map[string]any. A key missing from
// a map is "undefined" and leaves the matching member untouched; a present
// nil is null and overwrites it.
//
// Members are declared with struct tags
//
//	type Point struct {
//		X float64 `cerialize:"x"`
//		Y float64 `cerialize:"y"`
//	}
//
//	func init() { cerialize.Register[Point]() }
//
// or programmatically with the annotate package. Serialize and Deserialize
// then walk a value and its declarations in lock-step:
//
//	tree, _ := cerialize.Serialize(&Point{X: 1, Y: 2}, nil)      // map[x:1 y:2]
//	p, _ := cerialize.DeserializeAs[Point](map[string]any{"x": 3.0})
//
// Deserialize merges into an existing target when one is given, reusing
// nested instances so references held elsewhere stay valid.
package cerialize
