package cerialize

import (
	"reflect"

	"github.com/weichx/cerialize/internal/common"
	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/node"
	"github.com/weichx/cerialize/primitive"
)

// SerializeJSON deep-copies source into a data tree without consulting any
// declarations. Functions become nil, dates and patterns become strings and
// struct values contribute their exported fields. With transformKeys the
// serialize key transform is applied to every object key.
func (m *Mapper) SerializeJSON(source any, transformKeys bool) any {
	return m.session(metadata.Default).serializeJSON(source, transformKeys)
}

// DeserializeJSON deep-copies data. A []any or map[string]any target is
// reused at the top level. A function anywhere in data is rejected with
// ErrFunctionValue.
func (m *Mapper) DeserializeJSON(data any, transformKeys bool, target any) (any, error) {
	return m.session(metadata.Default).deserializeJSON(data, transformKeys, target)
}

func (s *session) serializeJSON(value any, transform bool) any {
	rename := noRename
	if transform {
		rename = s.serializeKeys
	}

	return copyOut(reflect.ValueOf(value), rename)
}

// copyOut converts an arbitrary Go value into tree form.
func copyOut(rv reflect.Value, rename func(string) string) any {
	if rv.IsValid() && !rv.CanInterface() {
		return nil
	}

	switch node.KindOfValue(rv) {
	case node.KindNull, node.KindFunction:
		return nil
	case node.KindString:
		return deref(rv).String()
	case node.KindBoolean:
		return deref(rv).Bool()
	case node.KindNumber:
		return primitive.Serialize(rv.Interface(), primitive.Number)
	case node.KindDate:
		return primitive.Serialize(rv.Interface(), primitive.Date)
	case node.KindRegExp:
		return primitive.Serialize(rv.Interface(), primitive.RegExp)
	case node.KindArray:
		rv = deref(rv)
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = copyOut(rv.Index(i), rename)
		}
		return out
	case node.KindOther:
		if rv = deref(rv); rv.Kind() != reflect.Map {
			return nil
		}
	}

	rv = deref(rv)
	out := make(map[string]any)

	if rv.Kind() == reflect.Map {
		iter := rv.MapRange()
		for iter.Next() {
			out[rename(mapKey(iter.Key()))] = copyOut(iter.Value(), rename)
		}
		return out
	}

	for _, f := range reflect.VisibleFields(rv.Type()) {
		if !f.IsExported() || f.Anonymous && node.Base(f.Type).Kind() == reflect.Struct {
			continue
		}

		v, err := rv.FieldByIndexErr(f.Index)
		if err != nil || !v.CanInterface() {
			continue
		}
		if v.Kind() == reflect.Interface && v.IsNil() {
			continue
		}

		out[rename(f.Name)] = copyOut(v, rename)
	}

	return out
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}

	return primitive.ToString(k.Interface())
}

func (s *session) deserializeJSON(data any, transform bool, target any) (any, error) {
	rename := noRename
	if transform {
		rename = s.deserializeKeys
	}

	return copyIn(data, rename, target)
}

// copyIn deep-copies a data tree into target. A target array is reused
// along with its elements, so objects nested in it are merged. A target
// map is reused but its values are always fresh.
func copyIn(data any, rename func(string) string, target any) (any, error) {
	switch node.KindOf(data) {
	case node.KindFunction:
		return nil, ErrFunctionValue

	case node.KindArray:
		elems, _ := arrayElements(data)

		out, _ := target.([]any)
		if len(out) >= len(elems) {
			out = out[:len(elems)]
		} else {
			grown := make([]any, len(elems))
			copy(grown, out)
			out = grown
		}

		for i, elem := range elems {
			v, err := copyIn(elem, rename, out[i])
			if err != nil {
				return nil, err
			}
			out[i] = v
		}

		return out, nil

	case node.KindObject:
		entries, ok := objectEntries(data)
		if !ok {
			// structs are read through their exported fields
			entries, _ = copyOut(reflect.ValueOf(data), noRename).(map[string]any)
		}

		out, _ := target.(map[string]any)
		if out == nil {
			out = make(map[string]any, len(entries))
		}

		keys := common.SortedKeys(entries)

		for _, key := range keys {
			v, err := copyIn(entries[key], rename, nil)
			if err != nil {
				return nil, err
			}
			out[rename(key)] = v
		}

		return out, nil

	case node.KindNumber:
		return primitive.Serialize(data, primitive.Number), nil

	case node.KindNull:
		return nil, nil

	case node.KindString:
		if _, ok := data.(string); !ok {
			return primitive.ToString(data), nil
		}
	case node.KindBoolean:
		if _, ok := data.(bool); !ok {
			return primitive.Truthy(data), nil
		}
	}

	return data, nil
}

func noRename(key string) string {
	return key
}

func deref(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	return rv
}
