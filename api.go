package cerialize

import "github.com/weichx/cerialize/metadata"

// Serialize renders instance with Default(). See Mapper.Serialize.
func Serialize(instance any, typ any) (any, error) {
	return defaultMapper.Serialize(instance, typ)
}

func SerializeArray(source any, typ any) ([]any, error) {
	return defaultMapper.SerializeArray(source, typ)
}

func SerializeMap(source any, typ any) (map[string]any, error) {
	return defaultMapper.SerializeMap(source, typ)
}

func SerializeJSON(source any, transformKeys bool) any {
	return defaultMapper.SerializeJSON(source, transformKeys)
}

// Deserialize builds or populates an instance with Default(). See
// Mapper.Deserialize.
func Deserialize(data any, typ any, target any, method metadata.InstantiationMethod) (any, error) {
	return defaultMapper.Deserialize(data, typ, target, method)
}

func DeserializeArray(data any, typ any, target any, method metadata.InstantiationMethod) (any, error) {
	return defaultMapper.DeserializeArray(data, typ, target, method)
}

func DeserializeMap(data any, typ any, target any, method metadata.InstantiationMethod) (any, error) {
	return defaultMapper.DeserializeMap(data, typ, target, method)
}

func DeserializeJSON(data any, transformKeys bool, target any) (any, error) {
	return defaultMapper.DeserializeJSON(data, transformKeys, target)
}

func DeserializeRaw(data any, typ any, target any) (any, error) {
	return defaultMapper.DeserializeRaw(data, typ, target)
}

func DeserializeArrayRaw(data any, typ any, target any) (any, error) {
	return defaultMapper.DeserializeArrayRaw(data, typ, target)
}

func DeserializeMapRaw(data any, typ any, target any) (any, error) {
	return defaultMapper.DeserializeMapRaw(data, typ, target)
}
