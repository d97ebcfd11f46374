package cerialize

import (
	"fmt"
	"reflect"

	"github.com/weichx/cerialize/annotate"
	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/node"
	"github.com/weichx/cerialize/primitive"
)

// TypeOf returns the reflect.Type of T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Typed binds a Mapper to the Go type T.
type Typed[T any] struct {
	m *Mapper
}

// Of returns the typed view of m for T. A nil m means Default().
func Of[T any](m *Mapper) Typed[T] {
	if m == nil {
		m = defaultMapper
	}

	return Typed[T]{m: m}
}

// converter picks the converter for T: a primitive tag, the struct type
// itself, or the plain copy for anything else.
func (x Typed[T]) converter() metadata.Converter {
	t := TypeOf[T]()
	if tag := primitive.TagOf(t); tag.IsValid() {
		return metadata.PrimitiveConverter(tag)
	}

	if base := node.Base(t); base.Kind() == reflect.Struct {
		return metadata.TypeConverter(base)
	}

	return metadata.Converter{}
}

// Deserialize builds a fresh T from data. A nil result, for null data or a
// NaN number, is returned as a nil pointer.
func (x Typed[T]) Deserialize(data any) (*T, error) {
	out, err := x.m.Deserialize(data, x.converter(), nil, metadata.Default)
	if err != nil || out == nil {
		return nil, err
	}

	switch v := out.(type) {
	case *T:
		return v, nil
	case T:
		return &v, nil
	}

	result := new(T)
	if err := assign(reflect.ValueOf(result).Elem(), out); err != nil {
		return nil, fmt.Errorf("%w: %T for %s: %w", ErrUnexpectedResult, out, TypeOf[T](), err)
	}

	return result, nil
}

// DeserializeInto merges data into target.
func (x Typed[T]) DeserializeInto(data any, target *T) error {
	if target == nil {
		return fmt.Errorf("%w: nil target", ErrNotAssignable)
	}

	out, err := x.m.Deserialize(data, x.converter(), target, metadata.Default)
	if err != nil {
		return err
	}

	if p, ok := out.(*T); ok && p == target {
		return nil
	}

	if err := assign(reflect.ValueOf(target).Elem(), out); err != nil {
		return fmt.Errorf("%w: %T for %s: %w", ErrUnexpectedResult, out, TypeOf[T](), err)
	}

	return nil
}

// DeserializeSlice builds a []T from a sequence.
func (x Typed[T]) DeserializeSlice(data any) ([]T, error) {
	var out []T

	if _, err := x.m.DeserializeArray(data, x.converter(), &out, metadata.Default); err != nil {
		return nil, err
	}

	return out, nil
}

// Serialize renders v with the declarations of T.
func (x Typed[T]) Serialize(v *T) (any, error) {
	if v == nil {
		return nil, nil
	}

	return x.m.Serialize(v, x.converter())
}

func (x Typed[T]) Annotate(member string, anns ...annotate.Annotation) error {
	return x.m.Annotate(TypeOf[T](), member, anns...)
}

func (x Typed[T]) Register(name ...string) error {
	return x.m.Register(TypeOf[T](), name...)
}

// DeserializeAs builds a fresh T from data with the default mapper.
func DeserializeAs[T any](data any) (*T, error) {
	return Of[T](nil).Deserialize(data)
}

// DeserializeInto merges data into target with the default mapper.
func DeserializeInto[T any](data any, target *T) error {
	return Of[T](nil).DeserializeInto(data, target)
}

// DeserializeSlice builds a []T from a sequence with the default mapper.
func DeserializeSlice[T any](data any) ([]T, error) {
	return Of[T](nil).DeserializeSlice(data)
}

// Annotate declares member of T in the default registry.
func Annotate[T any](member string, anns ...annotate.Annotation) error {
	return Of[T](nil).Annotate(member, anns...)
}

// Register declares the tagged fields of T in the default registry.
func Register[T any](name ...string) error {
	return Of[T](nil).Register(name...)
}

// MustRegister is Register for package initialization.
func MustRegister[T any](name ...string) {
	if err := Register[T](name...); err != nil {
		panic(err)
	}
}

// InheritSerialization copies the declarations of P that C lacks.
func InheritSerialization[P, C any]() {
	defaultMapper.Inherit(TypeOf[P](), TypeOf[C]())
}
