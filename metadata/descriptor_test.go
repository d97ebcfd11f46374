package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptor_Dispatch(t *testing.T) {
	tests := []struct {
		flags Flag
		ser   Shape
		de    Shape
	}{
		{0, ShapePlain, ShapePlain},
		{AutoObject, ShapeObject, ShapeObject},
		{AutoObject | AutoPrimitive, ShapePrimitive, ShapePrimitive},
		{AutoArray | AutoPrimitive, ShapeArray, ShapeArray},
		{SerializeMap | SerializeArray | DeserializeJSON, ShapeMap, ShapeJSON},
		{SerializeUsing | DeserializeUsing | DeserializeObject, ShapeUsing, ShapeObject},
		{SerializeJSONTransformKeys, ShapePlain, ShapePlain},
	}

	for _, tt := range tests {
		t.Run(tt.flags.String(), func(t *testing.T) {
			d := &Descriptor{Flags: tt.flags}
			assert.Equal(t, tt.ser, d.SerializeDispatch())
			assert.Equal(t, tt.de, d.DeserializeDispatch())
		})
	}
}

func TestDescriptor_WireKeys(t *testing.T) {
	d := &Descriptor{MemberName: "FirstName", SerializedKey: "FirstName", DeserializedKey: "first"}

	assert.Equal(t, "firstname", d.WireSerializedKey(strings.ToLower))
	assert.Equal(t, "FirstName", d.WireSerializedKey(nil))
	assert.Equal(t, "first", d.WireDeserializedKey(strings.ToUpper), "renamed keys are not transformed")

	d.SerializedKey = ""
	assert.Equal(t, "", d.WireSerializedKey(strings.ToLower))
	assert.False(t, d.Serializes())
	assert.True(t, d.Deserializes())
}

func TestFlag(t *testing.T) {
	f := Flag(0).SetIf(AutoPrimitive, true)
	assert.True(t, f.Has(SerializePrimitive))
	assert.Equal(t, SerializePrimitive, f.Serialize())
	assert.Equal(t, DeserializePrimitive, f.Deserialize())

	f = f.SetIf(SerializePrimitive, false)
	assert.Equal(t, DeserializePrimitive, f)
	assert.Equal(t, "DeserializePrimitive", f.String())
	assert.Equal(t, Flag(1<<14), SerializeObject)
}

func TestParseShape(t *testing.T) {
	s, ok := ParseShape("as")
	assert.True(t, ok)
	assert.Equal(t, ShapeObject, s)

	s, ok = ParseShape("")
	assert.True(t, ok)
	assert.Equal(t, ShapePlain, s)

	_, ok = ParseShape("tuple")
	assert.False(t, ok)

	assert.Equal(t, "json", ShapeJSON.Name())
	assert.Equal(t, "JSON", ShapeJSON.String())
}

func TestInstantiationMethod(t *testing.T) {
	assert.Equal(t, New, Default.Or(New))
	assert.Equal(t, None, None.Or(New))
	assert.Equal(t, ObjectCreate, InstantiationMethod(42).Or(ObjectCreate))

	m, ok := ParseInstantiationMethod("Object-Create")
	assert.True(t, ok)
	assert.Equal(t, ObjectCreate, m)
	assert.Equal(t, "ObjectCreate", m.String())

	_, ok = ParseInstantiationMethod("clone")
	assert.False(t, ok)
}
