package metadata

// Descriptor is the per-member record of how one member is read and written.
// An empty key means the member does not take part in that direction.
type Descriptor struct {
	MemberName            string
	SerializedKey         string
	DeserializedKey       string
	SerializedConverter   Converter
	DeserializedConverter Converter
	Flags                 Flag
}

// Clone returns an independent copy of d.
func (d *Descriptor) Clone() *Descriptor {
	clone := *d

	return &clone
}

// Serializes reports whether the member is written by Serialize.
func (d *Descriptor) Serializes() bool {
	return d.SerializedKey != ""
}

// Deserializes reports whether the member is read by Deserialize.
func (d *Descriptor) Deserializes() bool {
	return d.DeserializedKey != ""
}

// WireSerializedKey returns the key written for this member. The transform
// only applies when the key was not renamed explicitly.
func (d *Descriptor) WireSerializedKey(transform func(string) string) string {
	return wireKey(d.SerializedKey, d.MemberName, transform)
}

// WireDeserializedKey returns the key read for this member. The transform
// only applies when the key was not renamed explicitly.
func (d *Descriptor) WireDeserializedKey(transform func(string) string) string {
	return wireKey(d.DeserializedKey, d.MemberName, transform)
}

// SerializeDispatch picks the serialize traversal. Map wins over array,
// array over primitive, primitive over object, object over json and json
// over using.
func (d *Descriptor) SerializeDispatch() Shape {
	return dispatch(d.Flags, SerializeMap, SerializeArray, SerializePrimitive,
		SerializeObject, SerializeJSON, SerializeUsing)
}

// DeserializeDispatch is SerializeDispatch for the deserialize direction.
func (d *Descriptor) DeserializeDispatch() Shape {
	return dispatch(d.Flags, DeserializeMap, DeserializeArray, DeserializePrimitive,
		DeserializeObject, DeserializeJSON, DeserializeUsing)
}

// TransformsSerializedJSON reports whether the json shape renames keys when
// serializing.
func (d *Descriptor) TransformsSerializedJSON() bool {
	return d.Flags.Has(SerializeJSONTransformKeys)
}

// TransformsDeserializedJSON reports whether the json shape renames keys when
// deserializing.
func (d *Descriptor) TransformsDeserializedJSON() bool {
	return d.Flags.Has(DeserializeJSONTransformKeys)
}

func dispatch(f, mapF, arrayF, primitiveF, objectF, jsonF, usingF Flag) Shape {
	switch {
	case f.Any(mapF):
		return ShapeMap
	case f.Any(arrayF):
		return ShapeArray
	case f.Any(primitiveF):
		return ShapePrimitive
	case f.Any(objectF):
		return ShapeObject
	case f.Any(jsonF):
		return ShapeJSON
	case f.Any(usingF):
		return ShapeUsing
	}

	return ShapePlain
}

func wireKey(key, member string, transform func(string) string) string {
	if key == "" {
		return ""
	}

	if key == member && transform != nil {
		return transform(member)
	}

	return key
}
