package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph  *TypeGraph
	dir    string
	logger *zap.Logger
}

type Option func(*Analyzer)

// WithDir sets the directory package patterns are resolved from.
func WithDir(dir string) Option {
	return func(a *Analyzer) { a.dir = dir }
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		graph:  NewTypeGraph(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and adds their exported struct
// types to the graph. Patterns are standard Go package patterns
// (e.g., "./...", "github.com/acme/shop").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts the exported struct types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		a.graph.Types[id] = &TypeInfo{ID: id, Fields: structFields(st)}
		pkgInfo.Types = append(pkgInfo.Types, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	a.logger.Debug("package analyzed",
		zap.String("package", pkg.PkgPath),
		zap.Int("types", len(pkgInfo.Types)),
	)
}

func structFields(st *types.Struct) []FieldInfo {
	fields := make([]FieldInfo, 0, st.NumFields())

	for i := range st.NumFields() {
		v := st.Field(i)

		f := FieldInfo{
			Name:     v.Name(),
			Exported: v.Exported(),
			Embedded: v.Embedded(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Type:     types.TypeString(v.Type(), types.RelativeTo(v.Pkg())),
		}

		f.Kind, f.Value = classify(v.Type())
		fields = append(fields, f)
	}

	return fields
}

// classify mirrors the inference struct tags apply at runtime: pointers are
// looked through, dates and patterns are primitives, and containers are
// described by their element.
func classify(t types.Type) (FieldKind, Elem) {
	t = deref(t)

	switch tt := t.Underlying().(type) {
	case *types.Slice:
		return FieldSlice, element(tt.Elem())
	case *types.Array:
		return FieldSlice, element(tt.Elem())
	case *types.Map:
		if b, ok := tt.Key().Underlying().(*types.Basic); !ok || b.Info()&types.IsString == 0 {
			return FieldUnsupported, Elem{}
		}

		return FieldMap, element(tt.Elem())
	}

	e := element(t)

	return e.Kind, e
}

func element(t types.Type) Elem {
	t = deref(t)

	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()

		if obj.Pkg() != nil {
			switch obj.Pkg().Path() + "." + obj.Name() {
			case "time.Time":
				return Elem{Kind: FieldPrimitive, Primitive: "date"}
			case "regexp.Regexp":
				return Elem{Kind: FieldPrimitive, Primitive: "regexp"}
			}
		}

		if _, ok := named.Underlying().(*types.Struct); ok && obj.Pkg() != nil {
			return Elem{Kind: FieldStruct, Struct: &TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}}
		}
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		info := u.Info()

		switch {
		case info&types.IsString != 0:
			return Elem{Kind: FieldPrimitive, Primitive: "string"}
		case info&types.IsBoolean != 0:
			return Elem{Kind: FieldPrimitive, Primitive: "boolean"}
		case info&(types.IsInteger|types.IsFloat) != 0:
			return Elem{Kind: FieldPrimitive, Primitive: "number"}
		}
	case *types.Interface:
		return Elem{Kind: FieldInterface}
	case *types.Slice, *types.Array, *types.Map:
		// Nested containers are copied as they are.
		return Elem{Kind: FieldInterface}
	}

	return Elem{Kind: FieldUnsupported}
}

func deref(t types.Type) types.Type {
	for {
		p, ok := t.Underlying().(*types.Pointer)
		if !ok {
			return t
		}

		t = p.Elem()
	}
}
