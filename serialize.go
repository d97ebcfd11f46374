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

// Serialize renders instance as a data tree. typ is a reflect.Type, a
// primitive.Tag, a metadata.Converter or a custom converter; nil infers it
// from instance. A nil instance yields nil and a type without declared
// members yields an empty object.
func (m *Mapper) Serialize(instance any, typ any) (any, error) {
	s := m.session(metadata.Default)

	c, err := s.converterFor(typ, reflect.TypeOf(instance))
	if err != nil {
		return nil, err
	}

	return s.serializeValue(instance, c)
}

// SerializeArray serializes every element of source, which must be a slice
// or an array.
func (m *Mapper) SerializeArray(source any, typ any) ([]any, error) {
	s := m.session(metadata.Default)

	c, err := s.converterFor(typ, elemHint(source))
	if err != nil {
		return nil, err
	}

	return s.serializeArray(source, c)
}

// SerializeMap serializes every value of source, which must be a
// string-keyed map. Keys are written as they are.
func (m *Mapper) SerializeMap(source any, typ any) (map[string]any, error) {
	s := m.session(metadata.Default)

	c, err := s.converterFor(typ, elemHint(source))
	if err != nil {
		return nil, err
	}

	return s.serializeMap(source, c)
}

func (s *session) serializeValue(value any, c metadata.Converter) (any, error) {
	switch c.Kind {
	case metadata.ConverterPrimitive:
		return primitive.Serialize(value, c.Tag), nil

	case metadata.ConverterType:
		return s.serializeObject(value, c.Type)

	case metadata.ConverterFunc, metadata.ConverterObject:
		if c.Serialize == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoConverter, c)
		}
		return c.Serialize(value)
	}

	return s.serializePlain(value)
}

// serializePlain copies value into the tree. Values of a type with declared
// members, at any depth of plain arrays and maps, still go through their
// declarations.
func (s *session) serializePlain(value any) (any, error) {
	switch node.KindOf(value) {
	case node.KindObject:
		if t := node.Base(reflect.TypeOf(value)); t.Kind() == reflect.Struct {
			if _, ok := s.reg.Lookup(t); ok {
				return s.serializeObject(value, t)
			}
			break
		}

		entries, ok := objectEntries(value)
		if !ok {
			break
		}

		out := make(map[string]any, len(entries))
		for key, entry := range entries {
			v, err := s.serializePlain(entry)
			if err != nil {
				return nil, err
			}
			out[key] = v
		}

		return out, nil

	case node.KindArray:
		elems, _ := arrayElements(value)

		out := make([]any, len(elems))
		for i, elem := range elems {
			v, err := s.serializePlain(elem)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}

		return out, nil
	}

	return s.serializeJSON(value, false), nil
}

func (s *session) serializeObject(instance any, t reflect.Type) (any, error) {
	if node.KindOf(instance) == node.KindNull {
		return nil, nil
	}

	descriptors, ok := s.reg.Lookup(t)
	if !ok {
		s.logger.Debug("type has no declared members", zap.Stringer("type", t))
		return map[string]any{}, nil
	}

	out := make(map[string]any, len(descriptors))

	for _, d := range descriptors {
		if !d.Serializes() {
			continue
		}

		source, defined, err := s.readMember(instance, d.MemberName)
		if err != nil {
			return nil, err
		}
		if !defined {
			continue
		}

		key := d.WireSerializedKey(s.serializeKeys)

		value, err := s.serializeMember(d, source)
		if err != nil {
			return nil, atKey(err, key)
		}

		out[key] = value
	}

	if hook := s.reg.Hooks(t).OnSerialized; hook != nil {
		replaced, err := hook(out, instance)
		if err != nil {
			return nil, err
		}

		if replaced != nil {
			s.logger.Debug("serialized hook replaced the data", zap.Stringer("type", t))
			return replaced, nil
		}
	}

	return out, nil
}

func (s *session) serializeMember(d *metadata.Descriptor, source any) (any, error) {
	c := d.SerializedConverter

	switch d.SerializeDispatch() {
	case metadata.ShapeMap:
		out, err := s.serializeMap(source, c)
		if out == nil || err != nil {
			return nil, err
		}
		return out, nil
	case metadata.ShapeArray:
		out, err := s.serializeArray(source, c)
		if out == nil || err != nil {
			return nil, err
		}
		return out, nil
	case metadata.ShapePrimitive:
		return primitive.Serialize(source, c.Tag), nil
	case metadata.ShapeObject:
		return s.serializeValue(source, c)
	case metadata.ShapeJSON:
		return s.serializeJSON(source, d.TransformsSerializedJSON()), nil
	case metadata.ShapeUsing:
		if c.Serialize == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoConverter, c)
		}
		return c.Serialize(source)
	}

	return s.serializePlain(source)
}

func (s *session) serializeArray(source any, c metadata.Converter) ([]any, error) {
	if node.KindOf(source) == node.KindNull {
		return nil, nil
	}

	elems, ok := arrayElements(source)
	if !ok {
		return nil, &ShapeError{Expected: "array", Actual: node.KindOf(source).TypeName()}
	}

	out := make([]any, len(elems))
	for i, elem := range elems {
		value, err := s.serializeValue(elem, c)
		if err != nil {
			return nil, err
		}
		out[i] = value
	}

	return out, nil
}

func (s *session) serializeMap(source any, c metadata.Converter) (map[string]any, error) {
	if node.KindOf(source) == node.KindNull {
		return nil, nil
	}

	entries, ok := objectEntries(source)
	if !ok {
		return nil, &ShapeError{Expected: "object", Actual: node.KindOf(source).TypeName()}
	}

	keys := common.SortedKeys(entries)

	out := make(map[string]any, len(entries))
	for _, key := range keys {
		value, err := s.serializeValue(entries[key], c)
		if err != nil {
			return nil, err
		}
		out[key] = value
	}

	return out, nil
}
