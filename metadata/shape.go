package metadata

//go:generate go tool stringer -type=Shape -trimprefix=Shape -output=shape_string.go

// Shape is the traversal a descriptor selects for one direction.
type Shape int

const (
	ShapePlain Shape = iota
	ShapeMap
	ShapeArray
	ShapePrimitive
	ShapeObject
	ShapeJSON
	ShapeUsing

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// ParseShape resolves the lower-case names used in struct tags and schema
// files. "as" is the annotation spelling of the object shape.
func ParseShape(name string) (Shape, bool) {
	switch name {
	case "", "plain":
		return ShapePlain, true
	case "map":
		return ShapeMap, true
	case "array":
		return ShapeArray, true
	case "primitive":
		return ShapePrimitive, true
	case "as", "object":
		return ShapeObject, true
	case "json":
		return ShapeJSON, true
	case "using":
		return ShapeUsing, true
	}

	return 0, false
}

// Name returns the lower-case spelling accepted by ParseShape.
func (s Shape) Name() string {
	switch s {
	case ShapePlain:
		return "plain"
	case ShapeMap:
		return "map"
	case ShapeArray:
		return "array"
	case ShapePrimitive:
		return "primitive"
	case ShapeObject:
		return "object"
	case ShapeJSON:
		return "json"
	case ShapeUsing:
		return "using"
	}

	return s.String()
}
