package cerialize

import (
	"reflect"

	"github.com/weichx/cerialize/annotate"
	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/node"
)

// Annotate applies annotations to member of t in the mapper's registry.
func (m *Mapper) Annotate(t reflect.Type, member string, anns ...annotate.Annotation) error {
	return annotate.Apply(m.registry, node.Base(t), member, anns...)
}

// Register names t and declares its tagged fields. The name defaults to
// the Go type name and is what of= tags and schema files refer to.
func (m *Mapper) Register(t reflect.Type, name ...string) error {
	t = node.Base(t)
	if t == nil {
		return metadata.ErrNilType
	}

	typeName := t.Name()
	if len(name) > 0 && name[0] != "" {
		typeName = name[0]
	}

	if typeName != "" {
		if err := m.registry.RegisterName(typeName, t); err != nil {
			return err
		}
	}

	return annotate.Struct(m.registry, t)
}

// Inherit copies the declarations of parent that child lacks. Later
// changes to parent are not seen by child.
func (m *Mapper) Inherit(parent, child reflect.Type) {
	annotate.Inherit(m.registry, node.Base(parent), node.Base(child))
}

// SetHooks installs the post-processing callbacks of t.
func (m *Mapper) SetHooks(t reflect.Type, hooks metadata.Hooks) {
	m.registry.SetHooks(t, hooks)
}

// SetConstructor installs the function the New method allocates t with.
func (m *Mapper) SetConstructor(t reflect.Type, ctor metadata.Constructor) {
	m.registry.SetConstructor(t, ctor)
}
