package codec

import (
	"github.com/weichx/cerialize"
	"github.com/weichx/cerialize/metadata"
)

// Marshal serializes instance with m and encodes the tree in format. A nil
// m uses the default mapper.
func Marshal(m *cerialize.Mapper, instance any, typ any, format Format, opts Options) ([]byte, error) {
	if m == nil {
		m = cerialize.Default()
	}

	tree, err := m.Serialize(instance, typ)
	if err != nil {
		return nil, err
	}

	return Encode(format, tree, opts)
}

// Unmarshal decodes data and deserializes the tree into target, or into a
// fresh instance of typ when target is nil.
func Unmarshal(m *cerialize.Mapper, data []byte, typ any, target any, format Format) (any, error) {
	if m == nil {
		m = cerialize.Default()
	}

	tree, err := Decode(format, data)
	if err != nil {
		return nil, err
	}

	return m.Deserialize(tree, typ, target, metadata.Default)
}

// UnmarshalAs decodes data into a fresh T.
func UnmarshalAs[T any](m *cerialize.Mapper, data []byte, format Format) (*T, error) {
	tree, err := Decode(format, data)
	if err != nil {
		return nil, err
	}

	return cerialize.Of[T](m).Deserialize(tree)
}
