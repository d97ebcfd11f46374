package schema

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/weichx/cerialize/annotate"
	"github.com/weichx/cerialize/internal/common"
	"github.com/weichx/cerialize/internal/diagnostic"
	"github.com/weichx/cerialize/internal/match"
	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/node"
)

const maxSuggestions = 3

var primitiveNames = []string{"string", "number", "boolean", "date", "regexp"}

// Validate checks f against the names and types known to reg. It does not
// annotate anything. A nil reg limits the check to the structure of the
// file: names, duplicates, modes, shapes and inheritance cycles.
func Validate(f *File, reg *metadata.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	if f.Version != "" && f.Version != CurrentVersion {
		res.AddWarning("unknown_version",
			fmt.Sprintf("schema version %q is not %q", f.Version, CurrentVersion), "", "")
	}

	var known []string
	if reg != nil {
		known = reg.Names()
	}

	seen := map[string]struct{}{}

	for i := range f.Types {
		td := &f.Types[i]

		if td.Type == "" {
			res.AddError("type_missing", fmt.Sprintf("types[%d] has no type name", i), "", "")
			continue
		}

		if _, ok := seen[td.Type]; ok {
			res.AddError("duplicate_type", fmt.Sprintf("type %q is declared twice", td.Type), td.Type, "")
			continue
		}

		seen[td.Type] = struct{}{}

		if reg == nil {
			validateMembers(res, nil, td, nil)
			continue
		}

		t, ok := reg.TypeByName(td.Type)
		if !ok {
			res.AddError("type_not_found", fmt.Sprintf("type %q is not registered", td.Type), td.Type, "",
				match.Suggest(td.Type, known, maxSuggestions)...)

			continue
		}

		validateInherit(res, reg, td, known)
		validateMembers(res, reg, td, t)
	}

	if _, err := inheritOrder(f); err != nil {
		res.AddError("inherit_cycle", err.Error(), "", "")
	}

	return res
}

func validateInherit(res *diagnostic.Diagnostics, reg *metadata.Registry, td *TypeDecl, known []string) {
	if td.Inherit == "" {
		return
	}

	if td.Inherit == td.Type {
		res.AddWarning("inherit_self", "type inherits from itself", td.Type, "")
		return
	}

	if _, ok := reg.TypeByName(td.Inherit); !ok {
		res.AddError("inherit_not_found", fmt.Sprintf("inherited type %q is not registered", td.Inherit),
			td.Type, "", match.Suggest(td.Inherit, known, maxSuggestions)...)
	}
}

func validateMembers(res *diagnostic.Diagnostics, reg *metadata.Registry, td *TypeDecl, t reflect.Type) {
	fields := exportedFields(t)
	seenSer, seenDe := map[string]struct{}{}, map[string]struct{}{}

	for i := range td.Members {
		md := &td.Members[i]

		if md.Name == "" {
			res.AddError("member_missing", fmt.Sprintf("members[%d] has no name", i), td.Type, "")
			continue
		}

		if !markDirections(md, seenSer, seenDe) {
			res.AddError("duplicate_member", fmt.Sprintf("member %q is declared twice", md.Name), td.Type, md.Name)
			continue
		}

		if t == nil {
			validateMember(res, nil, td.Type, md, nil)
			continue
		}

		field, err := metadata.Member(t, md.Name)

		switch {
		case errors.Is(err, metadata.ErrUnexportedMember):
			res.AddError("unexported_member", "member is not exported", td.Type, md.Name)
			continue
		case err != nil:
			res.AddError("member_not_found", fmt.Sprintf("%s has no member %q", node.TypeString(t), md.Name),
				td.Type, md.Name, match.Suggest(md.Name, fields, maxSuggestions)...)

			continue
		}

		validateMember(res, reg, td.Type, md, field.Type)
	}
}

// markDirections records the directions of md and reports false when one
// of them was declared already. A member may appear twice when the entries
// cover different directions.
func markDirections(md *MemberDecl, seenSer, seenDe map[string]struct{}) bool {
	ser, de, err := md.Directions()
	if err != nil {
		ser, de = true, true
	}

	_, dupSer := seenSer[md.Name]
	_, dupDe := seenDe[md.Name]

	if (ser && dupSer) || (de && dupDe) {
		return false
	}

	if ser {
		seenSer[md.Name] = struct{}{}
	}

	if de {
		seenDe[md.Name] = struct{}{}
	}

	return true
}

func validateMember(res *diagnostic.Diagnostics, reg *metadata.Registry, typeName string, md *MemberDecl, ft reflect.Type) {
	if _, _, err := md.Directions(); err != nil {
		res.AddError("invalid_mode", err.Error(), typeName, md.Name)
	}

	shape, ok := metadata.ParseShape(md.ShapeName())
	if !ok {
		res.AddError("invalid_shape", fmt.Sprintf("unknown shape %q", md.Shape), typeName, md.Name)
		return
	}

	if md.TransformKeys != nil && shape != metadata.ShapeJSON {
		res.AddWarning("transform_keys_ignored", "transform_keys only applies to the json shape", typeName, md.Name)
	}

	switch shape {
	case metadata.ShapePlain:
		if md.Of != "" {
			res.AddWarning("of_ignored", "of is ignored by the plain shape", typeName, md.Name)
		}

	case metadata.ShapeJSON:
		if md.Of != "" || md.Using != "" {
			res.AddWarning("of_ignored", "of and using are ignored by the json shape", typeName, md.Name)
		}

	case metadata.ShapeUsing:
		if md.Using == "" {
			res.AddError("missing_using", "shape \"using\" needs using", typeName, md.Name)
			return
		}

		if reg != nil {
			validateUsing(res, reg, typeName, md)
		}

	default:
		if md.Of == "" {
			res.AddError("missing_of", fmt.Sprintf("shape %q needs of", shape.Name()), typeName, md.Name)
			return
		}

		if reg == nil {
			return
		}

		if _, err := annotate.ResolveName(reg, md.Of); err != nil {
			known := append(append([]string{}, primitiveNames...), reg.Names()...)
			res.AddError("of_not_found", err.Error(), typeName, md.Name,
				match.Suggest(md.Of, known, maxSuggestions)...)
		}

		validateContainer(res, typeName, md, shape, ft)
	}
}

func validateUsing(res *diagnostic.Diagnostics, reg *metadata.Registry, typeName string, md *MemberDecl) {
	c, ok := reg.ConverterByName(md.Using)
	if !ok {
		res.AddError("converter_not_found", fmt.Sprintf("converter %q is not registered", md.Using),
			typeName, md.Name, match.Suggest(md.Using, reg.ConverterNames(), maxSuggestions)...)

		return
	}

	ser, de, err := md.Directions()
	if err != nil {
		return
	}

	if ser && c.Serialize == nil {
		res.AddError("converter_direction", fmt.Sprintf("converter %q cannot serialize", md.Using), typeName, md.Name)
	}

	if de && c.Deserialize == nil {
		res.AddError("converter_direction", fmt.Sprintf("converter %q cannot deserialize", md.Using), typeName, md.Name)
	}
}

// validateContainer checks array and map shapes against the Go field type.
// Interface fields accept any shape.
func validateContainer(res *diagnostic.Diagnostics, typeName string, md *MemberDecl, shape metadata.Shape, ft reflect.Type) {
	d := node.Dispatch(ft)
	if d == node.DispatcherInterface {
		return
	}

	switch shape {
	case metadata.ShapeArray:
		if d != node.DispatcherSlice {
			res.AddError("shape_mismatch", fmt.Sprintf("array shape on %s", node.TypeString(ft)), typeName, md.Name)
		}
	case metadata.ShapeMap:
		if d != node.DispatcherMap || node.Base(ft).Key().Kind() != reflect.String {
			res.AddError("shape_mismatch", fmt.Sprintf("map shape on %s", node.TypeString(ft)), typeName, md.Name)
		}
	}
}

func exportedFields(t reflect.Type) []string {
	t = node.Base(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var names []string

	for _, sf := range reflect.VisibleFields(t) {
		if sf.IsExported() && !sf.Anonymous {
			names = append(names, sf.Name)
		}
	}

	return names
}

// inheritOrder sorts the declarations of f so that every inherited type
// declared in f comes before the types inheriting from it.
func inheritOrder(f *File) ([]int, error) {
	index := make(map[string]int, len(f.Types))
	for i := range f.Types {
		if _, dup := index[f.Types[i].Type]; !dup {
			index[f.Types[i].Type] = i
		}
	}

	order, err := common.TopoSort(len(f.Types), func(i int) []int {
		td := f.Types[i]
		if td.Inherit == "" || td.Inherit == td.Type {
			return nil
		}

		if j, ok := index[td.Inherit]; ok && j != i {
			return []int{j}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inherit: %w", err)
	}

	return order, nil
}
