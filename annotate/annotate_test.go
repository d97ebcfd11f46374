package annotate

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weichx/cerialize/metadata"
	"github.com/weichx/cerialize/primitive"
)

type address struct {
	Street string
}

type person struct {
	Name     string
	Age      float64
	Home     *address
	Tags     []string
	Scores   map[string]float64
	Extra    map[string]any
	Birthday time.Time
	secret   string
}

var personType = reflect.TypeOf(person{})

func descriptor(t *testing.T, reg *metadata.Registry, member string) *metadata.Descriptor {
	t.Helper()

	d, ok := reg.Descriptor(personType, member)
	require.True(t, ok, "no descriptor for %s", member)

	return d
}

func TestApply_Plain(t *testing.T) {
	reg := metadata.NewRegistry()

	require.NoError(t, Apply(reg, personType, "Name", Serialize()))
	d := descriptor(t, reg, "Name")
	assert.Equal(t, "Name", d.SerializedKey)
	assert.Empty(t, d.DeserializedKey)
	assert.Equal(t, metadata.ShapePlain, d.SerializeDispatch())

	require.NoError(t, Apply(reg, personType, "Name", Deserialize()))
	assert.Equal(t, "Name", d.DeserializedKey)
}

func TestApply_As(t *testing.T) {
	reg := metadata.NewRegistry()

	require.NoError(t, Apply(reg, personType, "Age", DeserializeAs(primitive.Number, "age")))
	require.NoError(t, Apply(reg, personType, "Home", AutoserializeAs(reflect.TypeOf(address{}))))

	age := descriptor(t, reg, "Age")
	assert.Equal(t, "age", age.DeserializedKey)
	assert.Empty(t, age.SerializedKey)
	assert.Equal(t, metadata.ShapePrimitive, age.DeserializeDispatch())
	assert.Equal(t, metadata.DeserializeObject|metadata.DeserializePrimitive, age.Flags)

	home := descriptor(t, reg, "Home")
	assert.Equal(t, metadata.ShapeObject, home.SerializeDispatch())
	assert.Equal(t, metadata.ShapeObject, home.DeserializeDispatch())
	assert.Equal(t, reflect.TypeOf(address{}), home.SerializedConverter.Type)
}

func TestApply_Containers(t *testing.T) {
	reg := metadata.NewRegistry()

	require.NoError(t, Apply(reg, personType, "Tags", AutoserializeAsArray(primitive.String)))
	require.NoError(t, Apply(reg, personType, "Scores", SerializeAsMap(primitive.Number, "scores")))

	tags := descriptor(t, reg, "Tags")
	assert.Equal(t, metadata.ShapeArray, tags.SerializeDispatch())
	assert.True(t, tags.Flags.Has(metadata.AutoPrimitive))

	scores := descriptor(t, reg, "Scores")
	assert.Equal(t, metadata.ShapeMap, scores.SerializeDispatch())
	assert.Equal(t, metadata.ShapePlain, scores.DeserializeDispatch())
}

func TestApply_JSON(t *testing.T) {
	reg := metadata.NewRegistry()

	require.NoError(t, Apply(reg, personType, "Extra", SerializeAsJSON("extra", false)))
	require.NoError(t, Apply(reg, personType, "Extra", DeserializeAsJSON()))

	d := descriptor(t, reg, "Extra")
	assert.Equal(t, "extra", d.SerializedKey)
	assert.Equal(t, "Extra", d.DeserializedKey)
	assert.False(t, d.TransformsSerializedJSON())
	assert.True(t, d.TransformsDeserializedJSON())

	assert.Error(t, Apply(reg, personType, "Extra", SerializeAsJSON(3)))
}

func TestApply_Using(t *testing.T) {
	reg := metadata.NewRegistry()

	require.NoError(t, Apply(reg, personType, "Name", SerializeUsing(strings.ToUpper, "NAME")))

	d := descriptor(t, reg, "Name")
	assert.Equal(t, metadata.ShapeUsing, d.SerializeDispatch())
	out, err := d.SerializedConverter.Serialize("ada")
	require.NoError(t, err)
	assert.Equal(t, "ADA", out)

	err = Apply(reg, personType, "Name", DeserializeUsing(primitive.String))
	assert.ErrorIs(t, err, ErrConverterDirection)

	half := metadata.FuncConverter(func(v any) (any, error) { return v, nil }, nil)
	err = Apply(reg, personType, "Name", AutoserializeUsing(half))
	assert.ErrorIs(t, err, ErrConverterDirection)
}

func TestApply_FalsyArgumentsDecline(t *testing.T) {
	reg := metadata.NewRegistry()

	require.NoError(t, Apply(reg, personType, "Age", SerializeAs(nil), DeserializeAsArray(primitive.Tag(0))))
	require.NoError(t, Apply(reg, personType, "", Autoserialize()))
	require.NoError(t, Apply(reg, nil, "Age", Autoserialize()))

	_, ok := reg.Lookup(personType)
	assert.False(t, ok)
}

func TestApply_Members(t *testing.T) {
	reg := metadata.NewRegistry()

	assert.ErrorIs(t, Apply(reg, personType, "Missing", Autoserialize()), metadata.ErrNoSuchMember)
	assert.ErrorIs(t, Apply(reg, personType, "secret", Autoserialize()), metadata.ErrUnexportedMember)
}

func TestApply_JoinsErrors(t *testing.T) {
	reg := metadata.NewRegistry()

	err := Apply(reg, personType, "Name", SerializeAs(42), DeserializeAs(struct{}{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, metadata.ErrNotAConverter)
	assert.Contains(t, err.Error(), "person.Name")
}

type color int

const (
	red color = iota
	green
)

func (c color) String() string {
	switch c {
	case red:
		return "red"
	case green:
		return "green"
	}
	return "unknown"
}

func TestEnum(t *testing.T) {
	c := Enum(red, green)

	out, err := c.Serialize(green)
	require.NoError(t, err)
	assert.Equal(t, "green", out)

	out, err = c.Serialize(color(7))
	require.NoError(t, err)
	assert.Nil(t, out)

	back, err := c.Deserialize("red", nil, metadata.New)
	require.NoError(t, err)
	assert.Equal(t, red, back)

	back, err = c.Deserialize(float64(1), nil, metadata.New)
	require.NoError(t, err)
	assert.Equal(t, green, back)

	back, err = c.Deserialize("blue", nil, metadata.New)
	require.NoError(t, err)
	assert.Nil(t, back)

	back, err = c.Deserialize(map[string]any{}, nil, metadata.New)
	require.NoError(t, err)
	assert.Nil(t, back)
}

func TestInherit(t *testing.T) {
	reg := metadata.NewRegistry()

	type base struct{ ID string }
	type derived struct {
		base
		Name string
	}

	require.NoError(t, Apply(reg, reflect.TypeOf(base{}), "ID", Autoserialize()))
	require.NoError(t, Apply(reg, reflect.TypeOf(derived{}), "Name", Autoserialize()))
	Inherit(reg, reflect.TypeOf(base{}), reflect.TypeOf(derived{}))
	Inherit(reg, nil, reflect.TypeOf(derived{}))

	list, ok := reg.Lookup(reflect.TypeOf(derived{}))
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, "ID", list[1].MemberName)
}

var errBoom = errors.New("boom")

func TestApply_NilAnnotation(t *testing.T) {
	reg := metadata.NewRegistry()

	failing := Annotation(func(*metadata.Registry, reflect.Type, string) error { return errBoom })

	err := Apply(reg, personType, "Name", nil, failing)
	assert.ErrorIs(t, err, errBoom)
}
