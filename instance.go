package cerialize

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/node"
)

type session struct {
	mapper          *Mapper
	reg             *metadata.Registry
	logger          *zap.Logger
	serializeKeys   func(string) string
	deserializeKeys func(string) string
	method          metadata.InstantiationMethod
}

// instantiate allocates a fresh instance of t per the session method.
func (s *session) instantiate(t reflect.Type) any {
	switch s.method {
	case metadata.None:
		return map[string]any{}
	case metadata.New:
		if ctor := s.reg.Constructor(t); ctor != nil {
			if v := ctor(); v != nil {
				return v
			}
		}
	}

	return reflect.New(t).Interface()
}

// member addresses one member of an instance: either a struct field or an
// entry of an untyped map[string]any container.
type member struct {
	field reflect.Value
	obj   map[string]any
	name  string
}

// memberOf resolves name on instance for writing. Nil embedded struct
// pointers on the way are allocated.
func (s *session) memberOf(instance any, name string) (member, error) {
	if obj, ok := instance.(map[string]any); ok {
		if obj == nil {
			return member{}, fmt.Errorf("%w: nil map cannot hold members", ErrNotAssignable)
		}

		return member{obj: obj, name: name}, nil
	}

	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return member{}, fmt.Errorf("%w: %T cannot hold members", ErrNotAssignable, instance)
	}

	index, err := s.fieldIndex(rv.Elem().Type(), name)
	if err != nil {
		return member{}, err
	}

	v := rv.Elem()
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}

	return member{field: v, name: name}, nil
}

// readMember returns the value of name on instance. defined is false for a
// missing map key, a nil interface field or a field behind a nil embedded
// pointer.
func (s *session) readMember(instance any, name string) (value any, defined bool, err error) {
	if obj, ok := instance.(map[string]any); ok {
		value, defined = obj[name]
		return value, defined, nil
	}

	rv := reflect.ValueOf(instance)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false, nil
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, false, fmt.Errorf("%w: %T has no members", ErrNotAssignable, instance)
	}

	index, err := s.fieldIndex(rv.Type(), name)
	if err != nil {
		return nil, false, err
	}

	field, err := rv.FieldByIndexErr(index)
	if err != nil {
		return nil, false, nil
	}

	if field.Kind() == reflect.Interface && field.IsNil() {
		return nil, false, nil
	}

	return field.Interface(), true, nil
}

func (s *session) fieldIndex(t reflect.Type, name string) ([]int, error) {
	key := memberKey{t: t, name: name}
	if cached, ok := s.mapper.members.Load(key); ok {
		return cached.([]int), nil
	}

	field, err := metadata.Member(t, name)
	if err != nil {
		return nil, err
	}

	s.mapper.members.Store(key, field.Index)

	return field.Index, nil
}

// current returns the value a merge should reuse. Struct and array fields
// are handed out by address so they are updated in place.
func (m member) current() any {
	if m.obj != nil {
		return m.obj[m.name]
	}

	return existing(m.field)
}

// typ is the static type of the member, nil for untyped containers.
func (m member) typ() reflect.Type {
	if m.obj != nil {
		return nil
	}

	return m.field.Type()
}

func (m member) set(value any) error {
	if m.obj != nil {
		m.obj[m.name] = value
		return nil
	}

	return assign(m.field, value)
}

// existing returns the reusable value stored in v, or nil when there is
// nothing to merge into.
func existing(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Struct:
		if v.CanAddr() {
			return v.Addr().Interface()
		}
	case reflect.Array:
		if v.CanAddr() {
			return v.Slice(0, v.Len()).Interface()
		}
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}

	return v.Interface()
}

// objectEntries views data as a string-keyed mapping.
func objectEntries(data any) (map[string]any, bool) {
	switch x := data.(type) {
	case map[string]any:
		return x, x != nil
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(data)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out, true
}

// arrayElements views data as a sequence.
func arrayElements(data any) ([]any, bool) {
	if x, ok := data.([]any); ok {
		return x, x != nil
	}

	if node.KindOf(data) != node.KindArray {
		return nil, false
	}

	rv := reflect.ValueOf(data)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}
