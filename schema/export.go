package schema

import (
	"fmt"
	"strings"

	"github.com/weichx/cerialize/internal/diagnostic"
	"github.com/weichx/cerialize/metadata"
)

// Export renders the declarations of every named type in reg as a File.
// Types without a registered name cannot be referred to from a schema and
// are skipped. Members whose converter has no name are reported as
// warnings and left out.
func Export(reg *metadata.Registry) (*File, *diagnostic.Diagnostics) {
	f := &File{Version: CurrentVersion}
	diags := &diagnostic.Diagnostics{}

	for _, t := range reg.Types() {
		name := reg.NameOf(t)
		if name == "" {
			diags.AddInfo("unnamed_type", fmt.Sprintf("%s has no registered name", t), "", "")
			continue
		}

		descriptors, _ := reg.Lookup(t)
		td := TypeDecl{Type: name}

		for _, d := range descriptors {
			decls, err := memberDecls(reg, d)
			if err != nil {
				diags.AddWarning("member_not_exported", err.Error(), name, d.MemberName)
				continue
			}

			td.Members = append(td.Members, decls...)
		}

		f.Types = append(f.Types, td)
	}

	return f, diags
}

// memberDecls describes d as one entry when both directions agree and as
// one entry per direction otherwise.
func memberDecls(reg *metadata.Registry, d *metadata.Descriptor) ([]MemberDecl, error) {
	var ser, de *MemberDecl

	if d.Serializes() {
		md, err := sideDecl(reg, d.MemberName, d.SerializedKey, d.SerializeDispatch(),
			d.SerializedConverter, d.TransformsSerializedJSON())
		if err != nil {
			return nil, err
		}

		ser = &md
	}

	if d.Deserializes() {
		md, err := sideDecl(reg, d.MemberName, d.DeserializedKey, d.DeserializeDispatch(),
			d.DeserializedConverter, d.TransformsDeserializedJSON())
		if err != nil {
			return nil, err
		}

		de = &md
	}

	switch {
	case ser != nil && de != nil && sameDecl(ser, de):
		return []MemberDecl{*ser}, nil
	case ser != nil && de != nil:
		ser.Mode = StringOrArray{string(ModeSerialize)}
		de.Mode = StringOrArray{string(ModeDeserialize)}

		return []MemberDecl{*ser, *de}, nil
	case ser != nil:
		ser.Mode = StringOrArray{string(ModeSerialize)}
		return []MemberDecl{*ser}, nil
	case de != nil:
		de.Mode = StringOrArray{string(ModeDeserialize)}
		return []MemberDecl{*de}, nil
	}

	return nil, nil
}

func sideDecl(
	reg *metadata.Registry,
	member, key string,
	shape metadata.Shape,
	c metadata.Converter,
	transformKeys bool,
) (MemberDecl, error) {
	md := MemberDecl{Name: member}
	if key != member {
		md.Key = key
	}

	switch shape {
	case metadata.ShapePlain:
		return md, nil

	case metadata.ShapeJSON:
		md.Shape = shape.Name()
		if !transformKeys {
			md.TransformKeys = &transformKeys
		}

		return md, nil

	case metadata.ShapeUsing:
		if _, ok := reg.ConverterByName(c.Name); c.Name == "" || !ok {
			return md, fmt.Errorf("converter %s is not registered by name", c)
		}

		md.Shape = shape.Name()
		md.Using = c.Name

		return md, nil
	}

	of, err := converterName(reg, c)
	if err != nil {
		return md, err
	}

	md.Of = of

	switch shape {
	case metadata.ShapeArray, metadata.ShapeMap:
		md.Shape = shape.Name()
	default:
		md.Shape = "as"
	}

	return md, nil
}

func converterName(reg *metadata.Registry, c metadata.Converter) (string, error) {
	switch c.Kind {
	case metadata.ConverterPrimitive:
		return strings.ToLower(c.Tag.String()), nil
	case metadata.ConverterType:
		if name := reg.NameOf(c.Type); name != "" {
			return name, nil
		}

		return "", fmt.Errorf("type %s has no registered name", c.Type)
	}

	return "", fmt.Errorf("converter %s cannot be named in a schema", c)
}

func sameDecl(a, b *MemberDecl) bool {
	if a.Name != b.Name || a.Key != b.Key || a.Shape != b.Shape || a.Of != b.Of || a.Using != b.Using {
		return false
	}

	if (a.TransformKeys == nil) != (b.TransformKeys == nil) {
		return false
	}

	return a.TransformKeys == nil || *a.TransformKeys == *b.TransformKeys
}
