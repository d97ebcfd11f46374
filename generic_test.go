package cerialize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weichx/cerialize"
	"github.com/weichx/cerialize/annotate"
	"github.com/weichx/cerialize/metadata"
)

func TestTyped_Deserialize(t *testing.T) {
	m := newMapper(t)
	points := cerialize.Of[Point](m)

	p, err := points.Deserialize(map[string]any{"x": "1.5"})
	require.NoError(t, err)
	assert.Equal(t, &Point{X: 1.5}, p)

	p, err = points.Deserialize(nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	list, err := points.DeserializeSlice([]any{map[string]any{"y": 1.0}, nil})
	require.NoError(t, err)
	assert.Equal(t, []Point{{Y: 1}, {}}, list)

	target := &Point{X: 3}
	require.NoError(t, points.DeserializeInto(map[string]any{"y": 4.0}, target))
	assert.Equal(t, &Point{X: 3, Y: 4}, target)

	require.ErrorIs(t, points.DeserializeInto(nil, nil), cerialize.ErrNotAssignable)

	tree, err := points.Serialize(&Point{X: 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 1.0, "y": 0.0}, tree)
}

func TestTyped_Primitives(t *testing.T) {
	m := newMapper(t)

	n, err := cerialize.Of[int](m).Deserialize("42")
	require.NoError(t, err)
	assert.Equal(t, 42, *n)

	when, err := cerialize.Of[time.Time](m).Deserialize("2000-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2000, when.Year())

	var at time.Time
	require.NoError(t, cerialize.Of[time.Time](m).DeserializeInto("1999-12-31T00:00:00Z", &at))
	assert.Equal(t, 1999, at.Year())

	_, err = cerialize.Of[int8](m).Deserialize(1000.0)
	require.ErrorIs(t, err, cerialize.ErrUnexpectedResult)
	require.ErrorIs(t, err, cerialize.ErrOverflow)
}

func TestTyped_RawResultIsUnexpected(t *testing.T) {
	m := newMapper(t, cerialize.WithInstantiationMethod(metadata.None))

	_, err := cerialize.Of[Point](m).Deserialize(map[string]any{"x": 1.0})
	require.ErrorIs(t, err, cerialize.ErrUnexpectedResult)
}

type gadget struct {
	Label string `cerialize:"label"`
	Size  int    `cerialize:"size"`
}

type widget struct {
	gadget `cerialize:",inherit"`
	Color  string `cerialize:"color"`
}

func TestGenericHelpers_DefaultMapper(t *testing.T) {
	require.NoError(t, cerialize.Register[gadget]())
	require.NoError(t, cerialize.Register[widget]())

	w, err := cerialize.DeserializeAs[widget](map[string]any{"label": "x", "size": "3", "color": "red"})
	require.NoError(t, err)
	assert.Equal(t, &widget{gadget: gadget{Label: "x", Size: 3}, Color: "red"}, w)

	got, ok := metadata.DefaultRegistry().TypeByName("gadget")
	require.True(t, ok)
	assert.Equal(t, cerialize.TypeOf[gadget](), got)

	list, err := cerialize.DeserializeSlice[gadget]([]any{map[string]any{"size": 1.0}})
	require.NoError(t, err)
	assert.Equal(t, []gadget{{Size: 1}}, list)

	var g gadget
	require.NoError(t, cerialize.DeserializeInto(map[string]any{"label": "in"}, &g))
	assert.Equal(t, "in", g.Label)

	tree, err := cerialize.Serialize(&widget{Color: "blue"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"label": "", "size": 0.0, "color": "blue"}, tree)
}

type sprocket struct {
	Teeth int
	Notes string
}

type bigSprocket struct {
	sprocket
	Weight float64
}

func TestGenericHelpers_AnnotateAndInherit(t *testing.T) {
	require.NoError(t, cerialize.Annotate[sprocket]("Teeth", annotate.AutoserializeAs(cerialize.TypeOf[int](), "teeth")))
	cerialize.InheritSerialization[sprocket, bigSprocket]()
	require.NoError(t, cerialize.Annotate[sprocket]("Notes", annotate.Autoserialize()))

	tree, err := cerialize.Serialize(&bigSprocket{sprocket: sprocket{Teeth: 12, Notes: "n"}, Weight: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"teeth": 12.0}, tree)
}
