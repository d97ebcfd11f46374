package annotate

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/weichx/cerialize/metadata"
)

var ErrConverterDirection = errors.New("converter does not support this direction")

// Annotation updates the descriptor of member in t.
type Annotation func(reg *metadata.Registry, t reflect.Type, member string) error

type direction int

const (
	serializeSide direction = 1 << iota
	deserializeSide
	bothSides = serializeSide | deserializeSide
)

// Apply runs every annotation against member of t. The member must be an
// exported field when t is a struct.
func Apply(reg *metadata.Registry, t reflect.Type, member string, anns ...Annotation) error {
	if t == nil || member == "" {
		return nil
	}

	if _, err := metadata.Member(t, member); err != nil {
		return err
	}

	var errs []error
	for _, ann := range anns {
		if ann == nil {
			continue
		}
		if err := ann(reg, t, member); err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", t, member, err))
		}
	}

	return errors.Join(errs...)
}

// Inherit seeds child with the descriptors of parent that child does not
// declare itself. It is a one-time copy.
func Inherit(reg *metadata.Registry, parent, child reflect.Type) {
	if parent == nil || child == nil {
		return
	}

	reg.Inherit(parent, child)
}

// Serialize writes the member as is, under its own name or the optional
// key.
func Serialize(key ...string) Annotation {
	return plain(serializeSide, key)
}

// Deserialize reads the member as is, from its own name or the optional
// key.
func Deserialize(key ...string) Annotation {
	return plain(deserializeSide, key)
}

// Autoserialize is Serialize and Deserialize at once.
func Autoserialize(key ...string) Annotation {
	return plain(bothSides, key)
}

// SerializeAs converts the member with typ, which may be a primitive.Tag,
// a reflect.Type, a metadata.Converter, a converter object or a function.
// An optional key renames the member on the wire.
func SerializeAs(typ any, key ...string) Annotation {
	return typed(serializeSide, typ, metadata.AutoObject, key)
}

func DeserializeAs(typ any, key ...string) Annotation {
	return typed(deserializeSide, typ, metadata.AutoObject, key)
}

func AutoserializeAs(typ any, key ...string) Annotation {
	return typed(bothSides, typ, metadata.AutoObject, key)
}

// SerializeAsArray converts every element of a slice member with typ.
func SerializeAsArray(typ any, key ...string) Annotation {
	return typed(serializeSide, typ, metadata.AutoArray, key)
}

func DeserializeAsArray(typ any, key ...string) Annotation {
	return typed(deserializeSide, typ, metadata.AutoArray, key)
}

func AutoserializeAsArray(typ any, key ...string) Annotation {
	return typed(bothSides, typ, metadata.AutoArray, key)
}

// SerializeAsMap converts every value of a string-keyed map member with typ.
// Map keys are written as they are.
func SerializeAsMap(typ any, key ...string) Annotation {
	return typed(serializeSide, typ, metadata.AutoMap, key)
}

func DeserializeAsMap(typ any, key ...string) Annotation {
	return typed(deserializeSide, typ, metadata.AutoMap, key)
}

func AutoserializeAsMap(typ any, key ...string) Annotation {
	return typed(bothSides, typ, metadata.AutoMap, key)
}

// SerializeAsJSON copies the member verbatim as a data tree. Arguments are
// an optional string key and an optional bool deciding whether nested keys
// go through the key transform (true by default).
func SerializeAsJSON(keyOrTransform ...any) Annotation {
	return rawJSON(serializeSide, keyOrTransform)
}

func DeserializeAsJSON(keyOrTransform ...any) Annotation {
	return rawJSON(deserializeSide, keyOrTransform)
}

func AutoserializeAsJSON(keyOrTransform ...any) Annotation {
	return rawJSON(bothSides, keyOrTransform)
}

// SerializeUsing hands the member to a custom function or converter object,
// bypassing every other rule.
func SerializeUsing(fn any, key ...string) Annotation {
	return using(serializeSide, fn, key)
}

func DeserializeUsing(fn any, key ...string) Annotation {
	return using(deserializeSide, fn, key)
}

// AutoserializeUsing takes a converter implementing both directions.
func AutoserializeUsing(converter any, key ...string) Annotation {
	return using(bothSides, converter, key)
}

func plain(dir direction, key []string) Annotation {
	return func(reg *metadata.Registry, t reflect.Type, member string) error {
		reg.Update(t, member, func(d *metadata.Descriptor) {
			setKey(d, dir, firstKey(key, member))
		})

		return nil
	}
}

func typed(dir direction, typ any, shape metadata.Flag, key []string) Annotation {
	return func(reg *metadata.Registry, t reflect.Type, member string) error {
		c, ok, err := metadata.ConverterOf(typ)
		if err != nil || !ok {
			return err
		}

		if err := checkDirections(c, dir); err != nil {
			return err
		}

		reg.Update(t, member, func(d *metadata.Descriptor) {
			setKey(d, dir, firstKey(key, member))
			setConverter(d, dir, c)

			d.Flags |= sided(shape, dir)
			d.Flags = d.Flags.SetIf(sided(metadata.AutoPrimitive, dir), c.IsPrimitive())
		})

		return nil
	}
}

func rawJSON(dir direction, args []any) Annotation {
	return func(reg *metadata.Registry, t reflect.Type, member string) error {
		key, transform := member, true

		for _, arg := range args {
			switch x := arg.(type) {
			case string:
				if x != "" {
					key = x
				}
			case bool:
				transform = x
			default:
				return fmt.Errorf("json annotation takes a key and a bool, got %T", arg)
			}
		}

		reg.Update(t, member, func(d *metadata.Descriptor) {
			setKey(d, dir, key)

			d.Flags |= sided(metadata.AutoJSON, dir)
			d.Flags = d.Flags.SetIf(sided(metadata.AutoJSONTransformKeys, dir), transform)
		})

		return nil
	}
}

func using(dir direction, fn any, key []string) Annotation {
	return func(reg *metadata.Registry, t reflect.Type, member string) error {
		c, ok, err := metadata.ConverterOf(fn)
		if err != nil || !ok {
			return err
		}

		if !c.IsCustom() {
			return fmt.Errorf("%w: using requires a function or converter object, got %s",
				ErrConverterDirection, c)
		}

		if err := checkDirections(c, dir); err != nil {
			return err
		}

		reg.Update(t, member, func(d *metadata.Descriptor) {
			setKey(d, dir, firstKey(key, member))
			setConverter(d, dir, c)

			d.Flags |= sided(metadata.AutoUsing, dir)
		})

		return nil
	}
}

func checkDirections(c metadata.Converter, dir direction) error {
	if !c.IsCustom() {
		return nil
	}

	if dir&serializeSide != 0 && c.Serialize == nil {
		return fmt.Errorf("%w: %s cannot serialize", ErrConverterDirection, c)
	}

	if dir&deserializeSide != 0 && c.Deserialize == nil {
		return fmt.Errorf("%w: %s cannot deserialize", ErrConverterDirection, c)
	}

	return nil
}

func setKey(d *metadata.Descriptor, dir direction, key string) {
	if dir&serializeSide != 0 {
		d.SerializedKey = key
	}
	if dir&deserializeSide != 0 {
		d.DeserializedKey = key
	}
}

func setConverter(d *metadata.Descriptor, dir direction, c metadata.Converter) {
	if dir&serializeSide != 0 {
		d.SerializedConverter = c
	}
	if dir&deserializeSide != 0 {
		d.DeserializedConverter = c
	}
}

// sided keeps the bits of an Auto* flag pair that belong to dir.
func sided(auto metadata.Flag, dir direction) metadata.Flag {
	var f metadata.Flag
	if dir&serializeSide != 0 {
		f |= auto.Serialize()
	}
	if dir&deserializeSide != 0 {
		f |= auto.Deserialize()
	}

	return f
}

func firstKey(key []string, member string) string {
	if len(key) > 0 && key[0] != "" {
		return key[0]
	}

	return member
}
