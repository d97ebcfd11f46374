package schema

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/weichx/cerialize/annotate"
	"github.com/weichx/cerialize/metadata"
)

var ErrInvalidSchema = errors.New("invalid schema")

// Apply validates f and declares its members on reg. Members of every type
// are declared first; inheritance runs afterwards, parents before
// children, so a child sees the members its parent got from the same file.
func Apply(f *File, reg *metadata.Registry) error {
	diags := Validate(f, reg)
	if err := diags.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	logger := reg.Logger()

	for _, w := range diags.Warnings {
		logger.Warn("schema warning", zap.String("diagnostic", w.String()))
	}

	for i := range f.Types {
		td := &f.Types[i]
		t, _ := reg.TypeByName(td.Type)

		for j := range td.Members {
			md := &td.Members[j]

			ann, err := memberAnnotation(reg, md)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", td.Type, md.Name, err)
			}

			if err := annotate.Apply(reg, t, md.Name, ann); err != nil {
				return err
			}
		}

		logger.Debug("schema type applied", zap.String("type", td.Type), zap.Int("members", len(td.Members)))
	}

	order, err := inheritOrder(f)
	if err != nil {
		return err
	}

	for _, i := range order {
		td := &f.Types[i]
		if td.Inherit == "" {
			continue
		}

		parent, _ := reg.TypeByName(td.Inherit)
		child, _ := reg.TypeByName(td.Type)

		annotate.Inherit(reg, parent, child)
	}

	return nil
}

// memberAnnotation builds the annotation md stands for.
func memberAnnotation(reg *metadata.Registry, md *MemberDecl) (annotate.Annotation, error) {
	ser, de, err := md.Directions()
	if err != nil {
		return nil, err
	}

	shape, ok := metadata.ParseShape(md.ShapeName())
	if !ok {
		return nil, fmt.Errorf("unknown shape %q", md.Shape)
	}

	switch shape {
	case metadata.ShapePlain:
		return choose(ser, de, annotate.Serialize, annotate.Deserialize, annotate.Autoserialize)(md.Key), nil

	case metadata.ShapeJSON:
		return choose(ser, de, annotate.SerializeAsJSON, annotate.DeserializeAsJSON, annotate.AutoserializeAsJSON)(
			md.Key, md.TransformsKeys()), nil

	case metadata.ShapeUsing:
		c, ok := reg.ConverterByName(md.Using)
		if !ok {
			return nil, fmt.Errorf("%w: converter %q", annotate.ErrUnknownName, md.Using)
		}

		return choose(ser, de, annotate.SerializeUsing, annotate.DeserializeUsing, annotate.AutoserializeUsing)(
			c, md.Key), nil
	}

	c, err := annotate.ResolveName(reg, md.Of)
	if err != nil {
		return nil, err
	}

	switch shape {
	case metadata.ShapeArray:
		return choose(ser, de, annotate.SerializeAsArray, annotate.DeserializeAsArray, annotate.AutoserializeAsArray)(
			c, md.Key), nil
	case metadata.ShapeMap:
		return choose(ser, de, annotate.SerializeAsMap, annotate.DeserializeAsMap, annotate.AutoserializeAsMap)(
			c, md.Key), nil
	default:
		return choose(ser, de, annotate.SerializeAs, annotate.DeserializeAs, annotate.AutoserializeAs)(
			c, md.Key), nil
	}
}

func choose[F any](ser, de bool, serialize, deserialize, both F) F {
	switch {
	case ser && de:
		return both
	case ser:
		return serialize
	default:
		return deserialize
	}
}
