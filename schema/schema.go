package schema

import (
	"fmt"
	"strings"
)

// File represents the root of a YAML schema file.
type File struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Types is the list of type declarations.
	Types []TypeDecl `yaml:"types"`
}

// TypeDecl declares the members of one registered type.
type TypeDecl struct {
	// Type is the registered name of the type.
	Type string `yaml:"type"`

	// Inherit names a registered type whose declarations are copied into
	// Type once all members of the file are declared.
	Inherit string `yaml:"inherit,omitempty"`

	Members []MemberDecl `yaml:"members,omitempty"`
}

// MemberDecl declares one member.
type MemberDecl struct {
	// Name is the Go field name.
	Name string `yaml:"name"`

	// Mode lists the directions: serialize, deserialize or auto (both).
	// Empty means auto.
	Mode StringOrArray `yaml:"mode,omitempty"`

	// Shape is plain, as, array, map, json or using. Empty means plain, or
	// as when Of is set.
	Shape string `yaml:"shape,omitempty"`

	// Of names the member type or element type: a primitive name or a
	// registered type name.
	Of string `yaml:"of,omitempty"`

	// Using names a registered converter.
	Using string `yaml:"using,omitempty"`

	// Key renames the member on the wire.
	Key string `yaml:"key,omitempty"`

	// TransformKeys controls key renaming inside a json member; nil means
	// true.
	TransformKeys *bool `yaml:"transform_keys,omitempty"`
}

// Mode is one direction a member takes part in.
type Mode string

const (
	ModeAuto        Mode = "auto"
	ModeSerialize   Mode = "serialize"
	ModeDeserialize Mode = "deserialize"
)

// IsValid returns true if the mode is a recognized value.
func (m Mode) IsValid() bool {
	return m == ModeAuto || m == ModeSerialize || m == ModeDeserialize
}

// Directions resolves the mode list of md.
func (md *MemberDecl) Directions() (serialize, deserialize bool, err error) {
	if md.Mode.IsEmpty() {
		return true, true, nil
	}

	for _, raw := range md.Mode {
		switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
		case ModeAuto:
			serialize, deserialize = true, true
		case ModeSerialize:
			serialize = true
		case ModeDeserialize:
			deserialize = true
		default:
			return false, false, fmt.Errorf("invalid mode %q (expected auto, serialize or deserialize)", raw)
		}
	}

	return serialize, deserialize, nil
}

// ShapeName returns the effective shape of md.
func (md *MemberDecl) ShapeName() string {
	shape := strings.ToLower(strings.TrimSpace(md.Shape))
	if shape == "" && md.Using != "" {
		return "using"
	}

	if shape == "" && md.Of != "" {
		return "as"
	}

	return shape
}

// TransformsKeys reports whether a json member renames nested keys.
func (md *MemberDecl) TransformsKeys() bool {
	return md.TransformKeys == nil || *md.TransformKeys
}

// Lookup returns the declaration of the named type, if present.
func (f *File) Lookup(typeName string) (*TypeDecl, bool) {
	for i := range f.Types {
		if f.Types[i].Type == typeName {
			return &f.Types[i], true
		}
	}

	return nil, false
}
