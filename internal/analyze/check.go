package analyze

import (
	"fmt"

	"github.com/weichx/cerialize/internal/diagnostic"
	"github.com/weichx/cerialize/internal/match"
	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/primitive"
	"github.com/weichx/cerialize/schema"
)

const maxSuggestions = 3

// Check resolves the types, members and of= names of f against g. Converter
// names only exist at runtime and are not checked.
func Check(f *schema.File, g *TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil || g == nil {
		res.AddError("nothing_to_check", "schema file or type graph is nil", "", "")
		return res
	}

	known := g.Names()

	for i := range f.Types {
		td := &f.Types[i]
		if td.Type == "" {
			continue
		}

		t := g.ByName(td.Type)
		if t == nil {
			res.AddError("type_not_found", fmt.Sprintf("type %q is not declared in the loaded packages", td.Type),
				td.Type, "", match.Suggest(td.Type, known, maxSuggestions)...)

			continue
		}

		if td.Inherit != "" && g.ByName(td.Inherit) == nil {
			res.AddError("inherit_not_found", fmt.Sprintf("inherited type %q is not declared in the loaded packages", td.Inherit),
				td.Type, "", match.Suggest(td.Inherit, known, maxSuggestions)...)
		}

		for j := range td.Members {
			checkMember(res, g, t, td.Type, &td.Members[j], known)
		}
	}

	return res
}

func checkMember(res *diagnostic.Diagnostics, g *TypeGraph, t *TypeInfo, typeName string, md *schema.MemberDecl, known []string) {
	if md.Name == "" {
		return
	}

	fi, ok := t.Field(md.Name, g)

	switch {
	case !ok:
		res.AddError("member_not_found", fmt.Sprintf("%s has no member %q", t.ID, md.Name),
			typeName, md.Name, match.Suggest(md.Name, t.ExportedNames(), maxSuggestions)...)

		return
	case !fi.Exported:
		res.AddError("unexported_member", "member is not exported", typeName, md.Name)
		return
	}

	shape, ok := metadata.ParseShape(md.ShapeName())
	if !ok {
		return
	}

	switch shape {
	case metadata.ShapeArray:
		if fi.Kind != FieldSlice && fi.Kind != FieldInterface {
			res.AddError("shape_mismatch", fmt.Sprintf("array shape on %s", fi.Type), typeName, md.Name)
		}
	case metadata.ShapeMap:
		if fi.Kind != FieldMap && fi.Kind != FieldInterface {
			res.AddError("shape_mismatch", fmt.Sprintf("map shape on %s", fi.Type), typeName, md.Name)
		}
	}

	if md.Of == "" || shape == metadata.ShapePlain || shape == metadata.ShapeJSON || shape == metadata.ShapeUsing {
		return
	}

	if _, ok := primitive.ParseTag(md.Of); ok {
		return
	}

	if g.ByName(md.Of) == nil {
		res.AddError("of_not_found", fmt.Sprintf("type %q is not declared in the loaded packages", md.Of),
			typeName, md.Name, match.Suggest(md.Of, known, maxSuggestions)...)
	}
}
