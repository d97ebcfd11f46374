package primitive

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToNumber converts v the way a JavaScript Number() call would. Values that
// have no numeric reading yield NaN.
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case string:
		return parseNumber(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case time.Time:
		return float64(x.UnixMilli())
	case *time.Time:
		if x == nil {
			return 0
		}
		return float64(x.UnixMilli())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		return ToNumber(rv.Bool())
	case reflect.String:
		return parseNumber(rv.String())
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return ToNumber(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		// arrays go through their string form, so [5] is 5 and [1,2] is NaN
		return parseNumber(ToString(v))
	}

	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}

		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range literals still carry a sign-correct infinity
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}

	return f
}

// FormatNumber renders f the way JavaScript's Number#toString does for the
// common range: integral values carry no fraction and very large or very
// small magnitudes switch to exponent form.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads the exponent to two digits, JavaScript does not
		s = strings.Replace(s, "e+0", "e+", 1)
		s = strings.Replace(s, "e-0", "e-", 1)
		return s
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
