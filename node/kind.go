package node

import (
	"reflect"
	"regexp"
	"time"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a value found in a data tree.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindNull
	KindString
	KindNumber
	KindBoolean
	KindDate
	KindRegExp
	KindArray
	KindObject
	KindFunction
	KindOther

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var (
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf((*regexp.Regexp)(nil))
)

// TypeName returns the JavaScript-style type name of k, as used in
// shape-mismatch messages.
func (k Kind) TypeName() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject, KindDate, KindRegExp:
		return "object"
	case KindFunction:
		return "function"
	}

	return "unknown"
}

// IsScalar reports whether k is copied by value in a data tree.
func (k Kind) IsScalar() bool {
	switch k {
	case KindNull, KindString, KindNumber, KindBoolean, KindDate, KindRegExp:
		return true
	}

	return false
}

// KindOf classifies v. Nil pointers, maps, slices and funcs are KindNull.
// Structs and pointers to structs are objects, like string-keyed maps.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case float64, int:
		return KindNumber
	case bool:
		return KindBoolean
	case []any:
		if v.([]any) == nil {
			return KindNull
		}
		return KindArray
	case map[string]any:
		if v.(map[string]any) == nil {
			return KindNull
		}
		return KindObject
	}

	return KindOfValue(reflect.ValueOf(v))
}

// KindOfValue is KindOf for an already reflected value.
func KindOfValue(rv reflect.Value) Kind {
	if !rv.IsValid() {
		return KindNull
	}

	switch rv.Type() {
	case timeType:
		return KindDate
	case regexpType:
		if rv.IsNil() {
			return KindNull
		}
		return KindRegExp
	}

	switch rv.Kind() {
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Bool:
		return KindBoolean
	case reflect.Slice:
		if rv.IsNil() {
			return KindNull
		}
		return KindArray
	case reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.IsNil() {
			return KindNull
		}
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
		return KindOther
	case reflect.Struct:
		return KindObject
	case reflect.Func:
		if rv.IsNil() {
			return KindNull
		}
		return KindFunction
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return KindOfValue(rv.Elem())
	}

	return KindOther
}
