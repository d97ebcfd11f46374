package primitive

import (
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=Tag -output=tag_string.go

// Tag names one of the five primitive wire types a member may be coerced to.
type Tag int

const (
	_ Tag = iota // zero value means "not a primitive"

	String
	Number
	Boolean
	Date
	RegExp

	// TagTotal is a constant that represents the total number of tags defined
	TagTotal = int(iota)
)

// IsValid reports whether t is one of the five primitive tags.
func (t Tag) IsValid() bool {
	return t > 0 && int(t) < TagTotal
}

// TagOf infers the primitive tag a Go type naturally maps onto. Types that
// are not primitive (structs, slices, maps, interfaces) yield the zero Tag.
func TagOf(rtype reflect.Type) Tag {
	for rtype != nil && rtype.Kind() == reflect.Ptr && rtype != regexpType {
		rtype = rtype.Elem()
	}

	kind := FromReflectType(rtype)
	switch {
	case kind.IsNumber():
		return Number
	case kind == KindBool:
		return Boolean
	case kind == KindString:
		return String
	case kind == KindTime:
		return Date
	case kind == KindRegexp:
		return RegExp
	}

	return 0
}

// ParseTag resolves the lower-case names used in struct tags and schema
// files ("string", "number", "boolean", "date", "regexp").
func ParseTag(name string) (Tag, bool) {
	switch strings.ToLower(name) {
	case "string":
		return String, true
	case "number", "float", "int":
		return Number, true
	case "boolean", "bool":
		return Boolean, true
	case "date", "time":
		return Date, true
	case "regexp", "regex":
		return RegExp, true
	}

	return 0, false
}
