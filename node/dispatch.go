package node

import (
	"reflect"

	"github.com/weichx/cerialize/primitive"
)

type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherPrimitive
	DispatcherInterface
	DispatcherSlice
	DispatcherMap
	DispatcherStruct
)

// Dispatch decides how a value is stored into a Go location of type dst.
// Pointers are looked through, so *[]T dispatches like []T.
func Dispatch(dst reflect.Type) DispatcherEnum {
	if dst == nil {
		return DispatcherUnknown
	}

	if dst == regexpType {
		return DispatcherPrimitive
	}

	dst = Base(dst)

	if dst.Kind() == reflect.Interface {
		return DispatcherInterface
	}

	if primitive.FromReflectType(dst) != 0 {
		return DispatcherPrimitive
	}

	switch dst.Kind() {
	case reflect.Slice, reflect.Array:
		return DispatcherSlice
	case reflect.Map:
		return DispatcherMap
	case reflect.Struct:
		return DispatcherStruct
	}

	return DispatcherUnknown
}

// Base strips every pointer level off t.
func Base(t reflect.Type) reflect.Type {
	_, b := PtrDepthAndBase(t)

	return b
}

// PtrDepthAndBase returns the pointer depth and the final base type.
func PtrDepthAndBase(t reflect.Type) (depth int, base reflect.Type) {
	depth, base = 0, t
	for base != nil && base.Kind() == reflect.Ptr && base != regexpType {
		depth++
		base = base.Elem()
	}

	return
}

// TypeString renders t with its full package path for diagnostics.
func TypeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + TypeString(t.Elem())
	case reflect.Slice:
		return "[]" + TypeString(t.Elem())
	case reflect.Array:
		return "[" + itoa(t.Len()) + "]" + TypeString(t.Elem())
	case reflect.Map:
		return "map[" + TypeString(t.Key()) + "]" + TypeString(t.Elem())
	default:
		if t.PkgPath() == "" {
			return t.String()
		}
		return t.PkgPath() + "." + t.Name()
	}
}
