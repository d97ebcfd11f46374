package metadata

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/weichx/cerialize/node"
	"github.com/weichx/cerialize/primitive"
)

var ErrNotAConverter = errors.New("value cannot be used as a converter")

//go:generate go tool stringer -type=ConverterKind -output=converter_string.go

// ConverterKind tags the variant held by a Converter.
type ConverterKind int

const (
	ConverterNone ConverterKind = iota
	ConverterPrimitive
	ConverterType
	ConverterFunc
	ConverterObject
)

type (
	// SerializeFunc turns an in-memory value into wire data.
	SerializeFunc func(value any) (any, error)
	// DeserializeFunc turns wire data into an in-memory value. target holds
	// the value currently stored in the member, if any.
	DeserializeFunc func(data, target any, m InstantiationMethod) (any, error)
)

// Serializer is the serialize half of a custom converter object.
type Serializer interface {
	Serialize(value any) (any, error)
}

// Deserializer is the deserialize half of a custom converter object.
type Deserializer interface {
	Deserialize(data, target any, m InstantiationMethod) (any, error)
}

// Converter says what a member is converted with. Exactly one variant is
// populated, as indicated by Kind.
type Converter struct {
	Kind ConverterKind
	Name string

	Tag         primitive.Tag
	Type        reflect.Type
	Serialize   SerializeFunc
	Deserialize DeserializeFunc
}

func PrimitiveConverter(tag primitive.Tag) Converter {
	return Converter{Kind: ConverterPrimitive, Tag: tag, Name: tag.String()}
}

// TypeConverter refers to a nested type. Pointer types are reduced to their
// base so *T and T share metadata.
func TypeConverter(t reflect.Type) Converter {
	t = node.Base(t)

	return Converter{Kind: ConverterType, Type: t, Name: t.String()}
}

// FuncConverter wraps custom functions. Either side may be nil when the
// converter is only used in one direction.
func FuncConverter(ser SerializeFunc, de DeserializeFunc) Converter {
	return Converter{Kind: ConverterFunc, Serialize: ser, Deserialize: de, Name: "func"}
}

// ObjectConverter wraps a value implementing Serializer, Deserializer or
// both.
func ObjectConverter(obj any) (Converter, error) {
	ser, isSer := obj.(Serializer)
	de, isDe := obj.(Deserializer)
	if !isSer && !isDe {
		return Converter{}, fmt.Errorf("%w: %T implements neither Serialize nor Deserialize", ErrNotAConverter, obj)
	}

	c := Converter{Kind: ConverterObject, Name: fmt.Sprintf("%T", obj)}
	if isSer {
		c.Serialize = ser.Serialize
	}
	if isDe {
		c.Deserialize = de.Deserialize
	}

	return c, nil
}

// CasterConverter wraps a plain one-argument function (see node.ParseCaster)
// so it can be used in either direction.
func CasterConverter(fn any) (Converter, error) {
	caster, err := node.ParseCaster(fn)
	if err != nil {
		return Converter{}, fmt.Errorf("%w: %w", ErrNotAConverter, err)
	}

	c := FuncConverter(
		caster.Call,
		func(data, _ any, _ InstantiationMethod) (any, error) {
			return caster.Call(data)
		},
	)
	c.Name = caster.String()

	return c, nil
}

// ConverterOf classifies an annotation argument. It returns ok=false for
// falsy arguments (nil, the zero Tag, a nil type) which annotations treat as
// "do not register".
func ConverterOf(v any) (c Converter, ok bool, err error) {
	switch x := v.(type) {
	case nil:
		return Converter{}, false, nil
	case Converter:
		return x, x.Kind != ConverterNone, nil
	case *Converter:
		if x == nil {
			return Converter{}, false, nil
		}
		return *x, x.Kind != ConverterNone, nil
	case primitive.Tag:
		if !x.IsValid() {
			return Converter{}, false, nil
		}
		return PrimitiveConverter(x), true, nil
	case reflect.Type:
		if x == nil {
			return Converter{}, false, nil
		}
		if tag := primitive.TagOf(x); tag.IsValid() {
			return PrimitiveConverter(tag), true, nil
		}
		return TypeConverter(x), true, nil
	case DeserializeFunc:
		if x == nil {
			return Converter{}, false, nil
		}
		return FuncConverter(nil, x), true, nil
	case func(data, target any, m InstantiationMethod) (any, error):
		if x == nil {
			return Converter{}, false, nil
		}
		return FuncConverter(nil, x), true, nil
	case Serializer, Deserializer:
		c, err = ObjectConverter(x)
		return c, err == nil, err
	}

	if reflect.TypeOf(v).Kind() == reflect.Func {
		if reflect.ValueOf(v).IsNil() {
			return Converter{}, false, nil
		}
		c, err = CasterConverter(v)
		return c, err == nil, err
	}

	return Converter{}, false, fmt.Errorf("%w: %T", ErrNotAConverter, v)
}

// IsZero reports whether no converter is set.
func (c Converter) IsZero() bool {
	return c.Kind == ConverterNone
}

// IsPrimitive reports whether c coerces to one of the primitive tags.
func (c Converter) IsPrimitive() bool {
	return c.Kind == ConverterPrimitive && c.Tag.IsValid()
}

// IsCustom reports whether c is a function or object converter.
func (c Converter) IsCustom() bool {
	return c.Kind == ConverterFunc || c.Kind == ConverterObject
}

func (c Converter) String() string {
	if c.Kind == ConverterNone {
		return "none"
	}

	return c.Kind.String() + "(" + c.Name + ")"
}
