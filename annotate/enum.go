package annotate

import (
	"fmt"
	"reflect"

	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/node"
)

// Enum builds a converter that writes each of values as its name, as
// printed by fmt (so a String method is honored), and reads names back.
// Numbers are accepted on read when E is numeric. Unknown values become nil.
func Enum[E comparable](values ...E) metadata.Converter {
	names := make(map[E]string, len(values))
	byName := make(map[string]E, len(values))

	for _, v := range values {
		name := fmt.Sprint(v)
		names[v] = name
		byName[name] = v
	}

	enumType := reflect.TypeOf((*E)(nil)).Elem()

	c := metadata.FuncConverter(
		func(value any) (any, error) {
			e, ok := value.(E)
			if !ok {
				return nil, nil
			}

			if name, known := names[e]; known {
				return name, nil
			}

			return nil, nil
		},
		func(data, _ any, _ metadata.InstantiationMethod) (any, error) {
			switch x := data.(type) {
			case nil:
				return nil, nil
			case string:
				if e, known := byName[x]; known {
					return e, nil
				}
				return nil, nil
			case E:
				if _, known := names[x]; known {
					return x, nil
				}
				return nil, nil
			}

			if node.KindOf(data) != node.KindNumber {
				return nil, nil
			}

			rv := reflect.ValueOf(data)
			if !rv.CanConvert(enumType) {
				return nil, nil
			}

			e := rv.Convert(enumType).Interface().(E)
			if _, known := names[e]; known {
				return e, nil
			}

			return nil, nil
		},
	)
	c.Name = "enum(" + enumType.String() + ")"

	return c
}
