package metadata

import "strings"

//go:generate go tool stringer -type=InstantiationMethod -output=instantiation_string.go

// InstantiationMethod controls how a fresh instance is allocated when
// deserialization has no target to merge into.
type InstantiationMethod int

const (
	// Default defers to the method configured on the mapper.
	Default InstantiationMethod = iota
	// New builds the instance with the constructor registered for the type,
	// falling back to the zero value.
	New
	// ObjectCreate allocates the zero value, skipping any constructor.
	ObjectCreate
	// None allocates an untyped map[string]any container.
	None

	// InstantiationMethodTotal is a constant that represents the total number of methods defined
	InstantiationMethodTotal = int(iota)
)

// IsValid reports whether m names a concrete method.
func (m InstantiationMethod) IsValid() bool {
	return m > Default && int(m) < InstantiationMethodTotal
}

// Or returns m, or fallback when m is Default or out of range.
func (m InstantiationMethod) Or(fallback InstantiationMethod) InstantiationMethod {
	if m.IsValid() {
		return m
	}

	return fallback
}

// ParseInstantiationMethod resolves "new", "objectcreate"/"object-create"
// and "none", case-insensitively.
func ParseInstantiationMethod(name string) (InstantiationMethod, bool) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "") {
	case "", "default":
		return Default, true
	case "new":
		return New, true
	case "objectcreate", "create":
		return ObjectCreate, true
	case "none", "raw":
		return None, true
	}

	return Default, false
}
