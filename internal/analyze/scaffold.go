package analyze

import (
	"github.com/weichx/cerialize/schema"
)

// Scaffold writes a schema declaring every exported field of every type in
// g, with the shapes struct tags would infer. Keys come from cerialize or
// json tags. An embedded struct known to g becomes the inherit of its
// outer type; unsupported fields, such as functions, are left out.
func (g *TypeGraph) Scaffold() *schema.File {
	f := &schema.File{Version: schema.CurrentVersion}
	seen := map[string]bool{}

	for _, t := range g.Sorted() {
		// Bare names are what Register uses by default; the first type in
		// Sorted order owns a name.
		if seen[t.ID.Name] {
			continue
		}

		seen[t.ID.Name] = true
		f.Types = append(f.Types, g.scaffoldType(t))
	}

	return f
}

func (g *TypeGraph) scaffoldType(t *TypeInfo) schema.TypeDecl {
	td := schema.TypeDecl{Type: t.ID.Name}

	for i := range t.Fields {
		fi := &t.Fields[i]
		if !fi.Exported {
			continue
		}

		if fi.Embedded {
			if td.Inherit == "" && fi.Kind == FieldStruct && g.GetType(*fi.Value.Struct) != nil {
				td.Inherit = fi.Value.Struct.Name
			}

			continue
		}

		key, skip := fi.TagKey()
		if skip {
			continue
		}

		md, ok := g.scaffoldMember(fi)
		if !ok {
			continue
		}

		if key != fi.Name {
			md.Key = key
		}

		td.Members = append(td.Members, md)
	}

	return td
}

func (g *TypeGraph) scaffoldMember(fi *FieldInfo) (schema.MemberDecl, bool) {
	md := schema.MemberDecl{Name: fi.Name}

	switch fi.Kind {
	case FieldPrimitive, FieldStruct:
		md.Of = g.elemName(fi.Value)
	case FieldSlice:
		if of := g.elemName(fi.Value); of != "" {
			md.Shape, md.Of = "array", of
		}
	case FieldMap:
		if of := g.elemName(fi.Value); of != "" {
			md.Shape, md.Of = "map", of
		}
	case FieldInterface:
		md.Shape = "json"
	default:
		return md, false
	}

	return md, true
}

// elemName is the of= name of e, or "" when e is copied plainly.
func (g *TypeGraph) elemName(e Elem) string {
	switch e.Kind {
	case FieldPrimitive:
		return e.Primitive
	case FieldStruct:
		if g.GetType(*e.Struct) != nil {
			return e.Struct.Name
		}
	}

	return ""
}
