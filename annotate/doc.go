// Package annotate declares how struct members are serialized.
//
// Each function returns an Annotation: a declaration that, once applied to a
// (type, member) pair, creates or updates the member's descriptor in a
// metadata.Registry. Annotations are applied during initialization, either
// explicitly through Apply or from `cerialize` struct tags through Struct.
//
//	annotate.Apply(reg, reflect.TypeOf(Point{}), "X", annotate.AutoserializeAs(primitive.Number, "x"))
//
// A falsy type or key argument (nil, the zero Tag, "") makes an annotation
// decline silently.
package annotate
