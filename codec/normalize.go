package codec

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/weichx/cerialize/primitive"
)

// Normalize rewrites a decoded value into data tree form: numbers become
// float64, maps get string keys, byte strings become base64 text and
// timestamps become date strings. Slices and string-keyed maps are
// rewritten in place.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil, string, float64, bool:
		return x

	case map[string]any:
		for k, e := range x {
			x[k] = Normalize(e)
		}

		return x

	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[mapKey(k)] = Normalize(e)
		}

		return out

	case []any:
		for i, e := range x {
			x[i] = Normalize(e)
		}

		return x

	case []byte:
		return base64.StdEncoding.EncodeToString(x)

	case time.Time:
		return primitive.Serialize(x, primitive.Date)

	case big.Int:
		f, _ := new(big.Float).SetInt(&x).Float64()
		return f

	case *big.Int:
		f, _ := new(big.Float).SetInt(x).Float64()
		return f

	case cbor.Tag:
		return Normalize(x.Content)
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	}

	return v
}

func mapKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	}

	if f, ok := Normalize(k).(float64); ok {
		return primitive.FormatNumber(f)
	}

	return fmt.Sprint(k)
}
