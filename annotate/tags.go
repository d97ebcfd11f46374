package annotate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/node"
	"github.com/weichx/cerialize/primitive"
)

// TagName is the struct tag key read by Struct.
const TagName = "cerialize"

var (
	ErrInvalidTag       = errors.New("invalid cerialize tag")
	ErrUnknownName      = errors.New("name is not registered")
	ErrUnsupportedField = errors.New("field type cannot be serialized")
)

type structTags struct {
	Key         string
	Skip        bool
	Serialize   bool
	Deserialize bool
	Shape       string
	Of          string
	Using       string
	NoTransform bool
	Inherit     bool
}

// Struct declares every tagged field of t. The tag value is
// "[key][,flag...]" where flags are:
//
//	auto                     both directions (the default)
//	serialize, deserialize   one direction only
//	as, array, map, json     the member shape
//	of=<Name>                element type: a primitive name or a registered type name
//	using=<Name>             a registered converter
//	notransform              json shape keeps nested keys untouched
//	inherit                  on an embedded struct: inherit its declarations
//
// "-" skips the field. Without a shape or of= flag the shape and converter
// are inferred from the field type.
func Struct(reg *metadata.Registry, t reflect.Type) error {
	t = node.Base(t)
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v is not a struct", ErrUnsupportedField, t)
	}

	var (
		errs    []error
		parents []reflect.Type
	)

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		tag, ok := sf.Tag.Lookup(TagName)
		if !ok {
			continue
		}

		st, err := parseTags(tag)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", t, sf.Name, err))
			continue
		}

		if st.Skip {
			continue
		}

		if st.Inherit {
			parent := node.Base(sf.Type)
			if !sf.Anonymous || parent.Kind() != reflect.Struct {
				errs = append(errs, fmt.Errorf("%s.%s: %w: inherit needs an embedded struct", t, sf.Name, ErrInvalidTag))
				continue
			}

			if _, known := reg.Lookup(parent); !known {
				if err := Struct(reg, parent); err != nil {
					errs = append(errs, err)
					continue
				}
			}

			parents = append(parents, parent)
			continue
		}

		ann, err := fieldAnnotation(reg, sf, st)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", t, sf.Name, err))
			continue
		}

		if err := Apply(reg, t, sf.Name, ann); err != nil {
			errs = append(errs, err)
		}
	}

	for _, parent := range parents {
		reg.Inherit(parent, t)
	}

	reg.Logger().Debug("struct tags applied",
		zap.Stringer("type", t),
		zap.Int("inherited", len(parents)),
		zap.Int("errors", len(errs)),
	)

	return errors.Join(errs...)
}

func parseTags(tag string) (*structTags, error) {
	var st structTags
	if tag == "-" {
		st.Skip = true
		return &st, nil
	}

	for idx, str := range strings.Split(tag, ",") {
		str = strings.TrimSpace(str)
		if idx == 0 {
			st.Key = str
			continue
		}

		name, value, hasValue := strings.Cut(str, "=")
		switch name {
		case "auto":
			st.Serialize, st.Deserialize = true, true
		case "serialize":
			st.Serialize = true
		case "deserialize":
			st.Deserialize = true
		case "as", "array", "map", "json":
			if st.Shape != "" && st.Shape != name {
				return nil, fmt.Errorf("%w: shapes %q and %q conflict", ErrInvalidTag, st.Shape, name)
			}
			st.Shape = name
		case "of":
			st.Of = value
		case "using":
			st.Using = value
		case "notransform":
			st.NoTransform = true
		case "inherit":
			st.Inherit = true
		case "":
		default:
			return nil, fmt.Errorf("%w: unknown flag %q", ErrInvalidTag, str)
		}

		if (name == "of" || name == "using") && (!hasValue || value == "") {
			return nil, fmt.Errorf("%w: %s needs a value", ErrInvalidTag, name)
		}
	}

	if !st.Serialize && !st.Deserialize {
		st.Serialize, st.Deserialize = true, true
	}

	if st.Using != "" && (st.Shape != "" || st.Of != "") {
		return nil, fmt.Errorf("%w: using cannot be combined with a shape", ErrInvalidTag)
	}

	return &st, nil
}

func fieldAnnotation(reg *metadata.Registry, sf reflect.StructField, st *structTags) (Annotation, error) {
	dir := direction(0)
	if st.Serialize {
		dir |= serializeSide
	}
	if st.Deserialize {
		dir |= deserializeSide
	}

	key := []string{st.Key}

	if st.Using != "" {
		c, ok := reg.ConverterByName(st.Using)
		if !ok {
			return nil, fmt.Errorf("%w: converter %q", ErrUnknownName, st.Using)
		}
		return using(dir, c, key), nil
	}

	if st.Shape == "json" {
		return rawJSON(dir, []any{st.Key, !st.NoTransform}), nil
	}

	shape, elem := st.Shape, any(nil)
	if st.Of != "" {
		c, err := ResolveName(reg, st.Of)
		if err != nil {
			return nil, err
		}
		elem = c
		if shape == "" {
			shape = "as"
		}
	} else {
		inferredShape, inferredElem, err := infer(sf.Type, shape)
		if err != nil {
			return nil, err
		}
		shape, elem = inferredShape, inferredElem
	}

	switch shape {
	case "as":
		return typed(dir, elem, metadata.AutoObject, key), nil
	case "array":
		return typed(dir, elem, metadata.AutoArray, key), nil
	case "map":
		return typed(dir, elem, metadata.AutoMap, key), nil
	}

	return plain(dir, key), nil
}

// ResolveName looks name up as a primitive tag first, then as a registered
// type.
func ResolveName(reg *metadata.Registry, name string) (metadata.Converter, error) {
	if tag, ok := primitive.ParseTag(name); ok {
		return metadata.PrimitiveConverter(tag), nil
	}

	if t, ok := reg.TypeByName(name); ok {
		return metadata.TypeConverter(t), nil
	}

	return metadata.Converter{}, fmt.Errorf("%w: type %q", ErrUnknownName, name)
}

// infer derives the shape and converter of a field from its Go type. An
// empty shape means a plain copy.
func infer(ft reflect.Type, shape string) (string, any, error) {
	base := node.Base(ft)

	switch node.Dispatch(ft) {
	case node.DispatcherPrimitive:
		if shape != "" && shape != "as" {
			return "", nil, fmt.Errorf("%w: %s is not a container", ErrInvalidTag, ft)
		}
		return "as", primitive.TagOf(ft), nil

	case node.DispatcherStruct:
		if shape != "" && shape != "as" {
			return "", nil, fmt.Errorf("%w: %s is not a container", ErrInvalidTag, ft)
		}
		return "as", base, nil

	case node.DispatcherSlice:
		if shape != "" && shape != "array" {
			return "", nil, fmt.Errorf("%w: %s is a sequence", ErrInvalidTag, ft)
		}
		return element("array", base.Elem())

	case node.DispatcherMap:
		if base.Key().Kind() != reflect.String {
			return "", nil, fmt.Errorf("%w: map keys of %s must be strings", ErrUnsupportedField, ft)
		}
		if shape != "" && shape != "map" {
			return "", nil, fmt.Errorf("%w: %s is a map", ErrInvalidTag, ft)
		}
		return element("map", base.Elem())

	case node.DispatcherInterface:
		if shape != "" {
			return "", nil, fmt.Errorf("%w: %s needs of= to use shape %q", ErrInvalidTag, ft, shape)
		}
		return "", nil, nil
	}

	return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedField, ft)
}

// element picks the per-element converter of a container. Containers of
// interfaces or of nested containers are copied as they are.
func element(shape string, elem reflect.Type) (string, any, error) {
	switch node.Dispatch(elem) {
	case node.DispatcherPrimitive:
		return shape, primitive.TagOf(elem), nil
	case node.DispatcherStruct:
		return shape, node.Base(elem), nil
	case node.DispatcherInterface, node.DispatcherSlice, node.DispatcherMap:
		return "", nil, nil
	}

	return "", nil, fmt.Errorf("%w: element %s", ErrUnsupportedField, elem)
}
