package metadata

import "strings"

// Flag records the structural shape a descriptor applies in each direction.
type Flag uint32

const (
	DeserializePrimitive Flag = 1 << (iota + 1)
	SerializePrimitive
	DeserializeArray
	SerializeArray
	DeserializeMap
	SerializeMap
	DeserializeJSON
	SerializeJSON
	DeserializeJSONTransformKeys
	SerializeJSONTransformKeys
	DeserializeUsing
	SerializeUsing
	DeserializeObject
	SerializeObject

	AutoPrimitive         = SerializePrimitive | DeserializePrimitive
	AutoArray             = SerializeArray | DeserializeArray
	AutoMap               = SerializeMap | DeserializeMap
	AutoJSON              = SerializeJSON | DeserializeJSON
	AutoJSONTransformKeys = SerializeJSONTransformKeys | DeserializeJSONTransformKeys
	AutoUsing             = SerializeUsing | DeserializeUsing
	AutoObject            = SerializeObject | DeserializeObject

	serializeMask = SerializePrimitive | SerializeArray | SerializeMap | SerializeJSON |
		SerializeJSONTransformKeys | SerializeUsing | SerializeObject
	deserializeMask = DeserializePrimitive | DeserializeArray | DeserializeMap | DeserializeJSON |
		DeserializeJSONTransformKeys | DeserializeUsing | DeserializeObject
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{DeserializePrimitive, "DeserializePrimitive"},
	{SerializePrimitive, "SerializePrimitive"},
	{DeserializeArray, "DeserializeArray"},
	{SerializeArray, "SerializeArray"},
	{DeserializeMap, "DeserializeMap"},
	{SerializeMap, "SerializeMap"},
	{DeserializeJSON, "DeserializeJSON"},
	{SerializeJSON, "SerializeJSON"},
	{DeserializeJSONTransformKeys, "DeserializeJSONTransformKeys"},
	{SerializeJSONTransformKeys, "SerializeJSONTransformKeys"},
	{DeserializeUsing, "DeserializeUsing"},
	{SerializeUsing, "SerializeUsing"},
	{DeserializeObject, "DeserializeObject"},
	{SerializeObject, "SerializeObject"},
}

// Has reports whether every bit of mask is set.
func (f Flag) Has(mask Flag) bool {
	return f&mask == mask
}

// Any reports whether at least one bit of mask is set.
func (f Flag) Any(mask Flag) bool {
	return f&mask != 0
}

// SetIf sets bits when cond holds and clears them otherwise.
func (f Flag) SetIf(bits Flag, cond bool) Flag {
	if cond {
		return f | bits
	}

	return f &^ bits
}

// Serialize keeps only the serialize-direction bits.
func (f Flag) Serialize() Flag {
	return f & serializeMask
}

// Deserialize keeps only the deserialize-direction bits.
func (f Flag) Deserialize() Flag {
	return f & deserializeMask
}

func (f Flag) String() string {
	if f == 0 {
		return "0"
	}

	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}

	return strings.Join(parts, "|")
}
