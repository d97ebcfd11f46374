package analyze

import (
	"reflect"
	"sort"
	"strings"

	"github.com/weichx/cerialize/annotate"
	"github.com/weichx/cerialize/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "github.com/acme/shop"
	Name    string // e.g., "Product"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// FieldKind is the shape a field serializes as.
type FieldKind int

const (
	FieldUnsupported FieldKind = iota
	FieldPrimitive             // string, number, boolean, date, regexp
	FieldStruct                // named struct
	FieldSlice                 // slice or array
	FieldMap                   // string-keyed map
	FieldInterface             // interface, copied as json
)

// String returns a human-readable representation of the FieldKind.
func (k FieldKind) String() string {
	switch k {
	case FieldPrimitive:
		return "primitive"
	case FieldStruct:
		return "struct"
	case FieldSlice:
		return "slice"
	case FieldMap:
		return "map"
	case FieldInterface:
		return "interface"
	default:
		return common.UnknownStr
	}
}

// Elem describes a field value or a container element.
type Elem struct {
	Kind      FieldKind
	Primitive string  // primitive name when Kind is FieldPrimitive
	Struct    *TypeID // struct type when Kind is FieldStruct
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Embedded bool              // Whether the field is embedded (anonymous)
	Tag      reflect.StructTag // Raw struct tag
	Type     string            // Go type as written, for messages
	Kind     FieldKind
	Value    Elem // the field itself; for slices and maps, their element
}

// TagKey returns the key of the cerialize tag, falling back to the json tag.
// skip is true for a "-" tag.
func (f *FieldInfo) TagKey() (key string, skip bool) {
	for _, name := range []string{annotate.TagName, "json"} {
		tag, ok := f.Tag.Lookup(name)
		if !ok {
			continue
		}

		key, _, _ = strings.Cut(tag, ",")
		if key == "-" {
			return "", true
		}

		if key != "" {
			return key, false
		}
	}

	return "", false
}

// TypeInfo describes a named struct type.
type TypeInfo struct {
	ID     TypeID
	Fields []FieldInfo
}

// Field returns the field named name, following embedded structs known to
// g the way Go promotes fields.
func (t *TypeInfo) Field(name string, g *TypeGraph) (*FieldInfo, bool) {
	return t.field(name, g, map[TypeID]bool{})
}

func (t *TypeInfo) field(name string, g *TypeGraph, seen map[TypeID]bool) (*FieldInfo, bool) {
	if seen[t.ID] {
		return nil, false
	}

	seen[t.ID] = true

	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i], true
		}
	}

	for i := range t.Fields {
		f := &t.Fields[i]
		if !f.Embedded || f.Kind != FieldStruct {
			continue
		}

		if inner := g.GetType(*f.Value.Struct); inner != nil {
			if found, ok := inner.field(name, g, seen); ok {
				return found, true
			}
		}
	}

	return nil, false
}

// ExportedNames lists the exported, non-embedded field names of t.
func (t *TypeInfo) ExportedNames() []string {
	var names []string

	for _, f := range t.Fields {
		if f.Exported && !f.Embedded {
			names = append(names, f.Name)
		}
	}

	return names
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named struct types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Sorted returns every type ordered by name, then package path.
func (g *TypeGraph) Sorted() []*TypeInfo {
	out := make([]*TypeInfo, 0, len(g.Types))
	for _, t := range g.Types {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ID.Name != out[j].ID.Name {
			return out[i].ID.Name < out[j].ID.Name
		}

		return out[i].ID.PkgPath < out[j].ID.PkgPath
	})

	return out
}

// ByName resolves a schema type name: either the bare type name, which
// picks the first match in Sorted order, or "<pkgpath>.<Name>".
func (g *TypeGraph) ByName(name string) *TypeInfo {
	for _, t := range g.Sorted() {
		if t.ID.Name == name || t.ID.String() == name {
			return t
		}
	}

	return nil
}

// Names lists the bare names of every type in Sorted order.
func (g *TypeGraph) Names() []string {
	sorted := g.Sorted()

	names := make([]string, 0, len(sorted))
	for _, t := range sorted {
		names = append(names, t.ID.Name)
	}

	return names
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named struct types defined in this package
}
