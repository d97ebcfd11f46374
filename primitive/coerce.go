package primitive

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ToString converts v the way JavaScript's String() would, with dates in
// DateLayout and patterns in "/pattern/flags" form.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case float64:
		return FormatNumber(x)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(DateLayout)
	case *time.Time:
		if x == nil {
			return "null"
		}
		return x.Format(DateLayout)
	case *regexp.Regexp:
		if x == nil {
			return "null"
		}
		return FormatRegExp(x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return FormatNumber(rv.Float())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.String:
		return rv.String()
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return ToString(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			elem := rv.Index(i)
			if isNilValue(elem) {
				continue
			}
			parts[i] = ToString(elem.Interface())
		}
		return strings.Join(parts, ",")
	case reflect.Func:
		return "function"
	}

	return "[object Object]"
}

// Truthy applies JavaScript truthiness: nil, false, 0, NaN and "" are false,
// everything else is true.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		f := ToNumber(v)
		return f != 0 && !math.IsNaN(f)
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}

	return true
}

// Serialize renders value as the wire form of tag. Nil values stay nil and a
// Number that has no numeric reading becomes nil rather than NaN.
func Serialize(value any, tag Tag) any {
	if isNil(value) {
		return nil
	}

	switch tag {
	case Boolean:
		return Truthy(value)
	case Number:
		f := ToNumber(value)
		if math.IsNaN(f) {
			return nil
		}
		return f
	default:
		return ToString(value)
	}
}

// Deserialize coerces wire data into the Go value for tag. For Date, a
// non-nil *time.Time target is overwritten in place and returned so that
// other holders of that pointer observe the update.
func Deserialize(data any, tag Tag, target any) (any, error) {
	if isNil(data) {
		return nil, nil
	}

	switch tag {
	case Date:
		t, ok := toDate(data)
		if !ok {
			return nil, nil
		}

		if existing, isPtr := target.(*time.Time); isPtr && existing != nil {
			*existing = t
			return existing, nil
		}

		return t, nil

	case RegExp:
		if re, ok := data.(*regexp.Regexp); ok {
			return re, nil
		}

		return ParseRegExp(ToString(data))

	case Number:
		f := ToNumber(data)
		if math.IsNaN(f) {
			return nil, nil
		}
		return f, nil

	case Boolean:
		return Truthy(data), nil

	case String:
		return ToString(data), nil
	}

	return nil, fmt.Errorf("primitive: unknown tag %v", tag)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	return isNilValue(reflect.ValueOf(v))
}

func isNilValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Invalid:
		return true
	}

	return false
}
