package cerialize

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/weichx/cerialize/internal/common"
	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/node"
	"github.com/weichx/cerialize/primitive"
)

// Deserialize builds an instance of typ from data. typ is a reflect.Type, a
// primitive.Tag, a metadata.Converter or a custom converter; nil infers it
// from target. When target is non-nil it is populated in place and
// returned. method metadata.Default uses the mapper's default method.
func (m *Mapper) Deserialize(data any, typ any, target any, method metadata.InstantiationMethod) (any, error) {
	s := m.session(method)

	c, err := s.converterFor(typ, reflect.TypeOf(target))
	if err != nil {
		return nil, err
	}

	return s.deserializeValue(data, c, target)
}

// DeserializeArray deserializes every element of data with typ. data must
// be a sequence. target may be a slice, which is reused, or a pointer to a
// slice or array, which is resized and filled in place.
func (m *Mapper) DeserializeArray(data any, typ any, target any, method metadata.InstantiationMethod) (any, error) {
	s := m.session(method)

	c, err := s.converterFor(typ, elemHint(target))
	if err != nil {
		return nil, err
	}

	return s.deserializeInto(target, func(current any, want reflect.Type) (any, error) {
		return s.deserializeArray(data, c, current, want)
	})
}

// DeserializeMap deserializes every value of data with typ. data must be a
// string-keyed mapping; its keys are kept as they are. target may be a map
// or a pointer to one.
func (m *Mapper) DeserializeMap(data any, typ any, target any, method metadata.InstantiationMethod) (any, error) {
	s := m.session(method)

	c, err := s.converterFor(typ, elemHint(target))
	if err != nil {
		return nil, err
	}

	return s.deserializeInto(target, func(current any, want reflect.Type) (any, error) {
		return s.deserializeMap(data, c, current, want)
	})
}

// DeserializeRaw is Deserialize with the None method: nested instances are
// plain map[string]any containers.
func (m *Mapper) DeserializeRaw(data any, typ any, target any) (any, error) {
	return m.Deserialize(data, typ, target, metadata.None)
}

func (m *Mapper) DeserializeArrayRaw(data any, typ any, target any) (any, error) {
	return m.DeserializeArray(data, typ, target, metadata.None)
}

func (m *Mapper) DeserializeMapRaw(data any, typ any, target any) (any, error) {
	return m.DeserializeMap(data, typ, target, metadata.None)
}

// deserializeInto runs fn against the container target points to and
// stores the result back through the pointer.
func (s *session) deserializeInto(target any, fn func(current any, want reflect.Type) (any, error)) (any, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		var want reflect.Type
		if target != nil {
			want = rv.Type()
		}
		return fn(target, want)
	}

	slot := rv.Elem()

	out, err := fn(existing(slot), slot.Type())
	if err != nil {
		return nil, err
	}

	if err := assign(slot, out); err != nil {
		return nil, err
	}

	return slot.Interface(), nil
}

// deserializeValue converts one value with c. Type converters recurse into
// the declared members; custom converters get the value as a whole.
func (s *session) deserializeValue(data any, c metadata.Converter, target any) (any, error) {
	switch c.Kind {
	case metadata.ConverterPrimitive:
		return primitive.Deserialize(data, c.Tag, target)

	case metadata.ConverterType:
		return s.deserializeObject(data, c.Type, target)

	case metadata.ConverterFunc, metadata.ConverterObject:
		if c.Deserialize == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoConverter, c)
		}
		return c.Deserialize(data, target, s.method)
	}

	return s.deserializeJSON(data, false, nil)
}

// deserializeObject populates an instance of t from the members declared
// for t.
func (s *session) deserializeObject(data any, t reflect.Type, target any) (any, error) {
	if obj, ok := target.(map[string]any); ok && obj == nil {
		target = nil
	}

	descriptors, ok := s.reg.Lookup(t)
	if !ok {
		if target != nil {
			return target, nil
		}

		s.logger.Debug("type has no declared members", zap.Stringer("type", t))

		return s.instantiate(t), nil
	}

	if node.KindOf(data) == node.KindNull {
		return nil, nil
	}

	if target == nil {
		target = s.instantiate(t)
	}

	entries, _ := objectEntries(data)

	for _, d := range descriptors {
		if !d.Deserializes() {
			continue
		}

		key := d.WireDeserializedKey(s.deserializeKeys)

		source, present := entries[key]
		if !present {
			continue
		}

		if err := s.deserializeMember(d, source, target); err != nil {
			return nil, atKey(err, key)
		}
	}

	if hook := s.reg.Hooks(t).OnDeserialized; hook != nil {
		replaced, err := hook(data, target, s.method)
		if err != nil {
			return nil, err
		}

		if replaced != nil {
			s.logger.Debug("deserialized hook replaced the instance", zap.Stringer("type", t))
			return replaced, nil
		}
	}

	return target, nil
}

func (s *session) deserializeMember(d *metadata.Descriptor, source any, target any) error {
	mem, err := s.memberOf(target, d.MemberName)
	if err != nil {
		return err
	}

	c := d.DeserializedConverter
	current := mem.current()
	if current == nil && c.Kind == metadata.ConverterType {
		current = s.slot(mem.typ())
	}

	var value any

	switch d.DeserializeDispatch() {
	case metadata.ShapeMap:
		value, err = s.deserializeMap(source, c, current, mem.typ())
	case metadata.ShapeArray:
		value, err = s.deserializeArray(source, c, current, mem.typ())
	case metadata.ShapePrimitive:
		value, err = primitive.Deserialize(source, c.Tag, current)
	case metadata.ShapeObject:
		value, err = s.deserializeValue(source, c, current)
	case metadata.ShapeJSON:
		value, err = s.deserializeJSON(source, d.TransformsDeserializedJSON(), nil)
	case metadata.ShapeUsing:
		if c.Deserialize == nil {
			return fmt.Errorf("%w: %s", ErrNoConverter, c)
		}
		value, err = c.Deserialize(source, current, s.method)
	default:
		value, err = s.deserializePlain(source, mem)
	}

	if err != nil {
		return err
	}

	if err := mem.set(value); err != nil {
		return fmt.Errorf("%s: %w", d.MemberName, err)
	}

	return nil
}

// deserializePlain copies source as is. A member whose Go type has declared
// members is still populated through them, since a copied mapping cannot be
// stored in a struct field.
func (s *session) deserializePlain(source any, mem member) (any, error) {
	if t := mem.typ(); t != nil && node.KindOf(source) == node.KindObject {
		if base := node.Base(t); base.Kind() == reflect.Struct {
			if _, ok := s.reg.Lookup(base); ok {
				return s.deserializeObject(source, base, mem.current())
			}
		}
	}

	return s.deserializeJSON(source, false, nil)
}

// deserializeArray converts each element of data. current is reused: it is
// resized to the length of data and its elements are merged into. want is
// the Go type the result is stored as, nil for []any.
func (s *session) deserializeArray(data any, c metadata.Converter, current any, want reflect.Type) (any, error) {
	if node.KindOf(data) == node.KindNull {
		return nil, nil
	}

	elems, ok := arrayElements(data)
	if !ok {
		return nil, &ShapeError{Expected: "array", Actual: node.KindOf(data).TypeName()}
	}

	sliceType := reflect.TypeOf([]any(nil))
	if want != nil {
		if base := node.Base(want); base.Kind() == reflect.Slice || base.Kind() == reflect.Array {
			sliceType = reflect.SliceOf(base.Elem())
		}
	}

	out := reflect.MakeSlice(sliceType, len(elems), len(elems))
	reused := 0

	if cur := reflect.ValueOf(current); cur.IsValid() && cur.Type() == sliceType {
		if cur.Len() >= len(elems) {
			out = cur.Slice(0, len(elems))
		} else {
			reflect.Copy(out, cur)
		}
		reused = min(cur.Len(), len(elems))
	}

	for i, elem := range elems {
		slot := out.Index(i)

		var prev any
		if i < reused {
			prev = existing(slot)
		}
		if prev == nil && c.Kind == metadata.ConverterType {
			prev = s.slot(slot.Type())
		}

		value, err := s.deserializeValue(elem, c, prev)
		if err != nil {
			return nil, err
		}

		if err := assign(slot, value); err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
	}

	return out.Interface(), nil
}

// deserializeMap converts each value of data, keeping keys verbatim. Entries
// of current are merged into and entries missing from data are kept.
func (s *session) deserializeMap(data any, c metadata.Converter, current any, want reflect.Type) (any, error) {
	if node.KindOf(data) == node.KindNull {
		return nil, nil
	}

	entries, ok := objectEntries(data)
	if !ok {
		return nil, &ShapeError{Expected: "object", Actual: node.KindOf(data).TypeName()}
	}

	mapType := reflect.TypeOf(map[string]any(nil))
	if want != nil {
		if base := node.Base(want); base.Kind() == reflect.Map && base.Key().Kind() == reflect.String {
			mapType = base
		}
	}

	out := reflect.ValueOf(current)
	if !out.IsValid() || out.Type() != mapType || out.IsNil() {
		out = reflect.MakeMapWithSize(mapType, len(entries))
	}

	keys := common.SortedKeys(entries)

	for _, key := range keys {
		mapKey := reflect.ValueOf(key).Convert(mapType.Key())

		var prev any
		if old := out.MapIndex(mapKey); old.IsValid() {
			prev = mapEntryTarget(old)
		}
		if prev == nil && c.Kind == metadata.ConverterType {
			prev = s.slot(mapType.Elem())
		}

		value, err := s.deserializeValue(entries[key], c, prev)
		if err != nil {
			return nil, err
		}

		elem := reflect.New(mapType.Elem()).Elem()
		if err := assign(elem, value); err != nil {
			return nil, fmt.Errorf("[%q]: %w", key, err)
		}

		out.SetMapIndex(mapKey, elem)
	}

	return out.Interface(), nil
}

// mapEntryTarget makes a map value mergeable. Map values are not
// addressable, so struct values are merged through a copy.
func mapEntryTarget(v reflect.Value) any {
	if v.Kind() == reflect.Struct {
		cp := reflect.New(v.Type())
		cp.Elem().Set(v)
		return cp.Interface()
	}

	return existing(v)
}

// slot preallocates a struct for a typed Go destination under the None
// method, which would otherwise produce a map that cannot be stored there.
func (s *session) slot(t reflect.Type) any {
	if s.method != metadata.None || t == nil {
		return nil
	}

	if base := node.Base(t); base.Kind() == reflect.Struct {
		return reflect.New(base).Interface()
	}

	return nil
}

// converterFor resolves the typ argument of the entry points. A nil typ is
// inferred from hint: a type with declared members or a primitive type.
func (s *session) converterFor(typ any, hint reflect.Type) (metadata.Converter, error) {
	if typ == nil {
		if hint == nil {
			return metadata.Converter{}, nil
		}

		if tag := primitive.TagOf(hint); tag.IsValid() {
			return metadata.PrimitiveConverter(tag), nil
		}

		t := node.Base(hint)
		if _, ok := s.reg.Lookup(t); ok {
			return metadata.TypeConverter(t), nil
		}

		return metadata.Converter{}, nil
	}

	c, _, err := metadata.ConverterOf(typ)

	return c, err
}

// elemHint returns the element type of the container target refers to.
func elemHint(target any) reflect.Type {
	if target == nil {
		return nil
	}

	switch t := node.Base(reflect.TypeOf(target)); t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return t.Elem()
	}

	return nil
}
