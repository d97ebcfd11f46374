package codec

import (
	"math/big"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weichx/cerialize"
	"github.com/weichx/cerialize/metadata"
)

var sampleTree = map[string]any{
	"name": "ada",
	"age":  36.0,
	"tags": []any{"a", "b"},
	"nested": map[string]any{
		"ok":   true,
		"none": nil,
	},
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"json": JSON, "YAML": YAML, "yml": YAML, " cbor ": CBOR} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	f, err := FormatOf("testdata/input.yml")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	_, err = FormatOf("Makefile")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.Equal(t, "cbor", CBOR.String())
	assert.Equal(t, "Format(7)", Format(7).String())
}

func TestDecode_JSON(t *testing.T) {
	tree, err := Decode(JSON, []byte(`{"name":"ada","age":36,"tags":["a","b"],"nested":{"ok":true,"none":null}}`))
	require.NoError(t, err)
	assert.Equal(t, sampleTree, tree, spew.Sdump(tree))
}

func TestDecode_YAML(t *testing.T) {
	tree, err := Decode(YAML, []byte("name: ada\nage: 36\ntags: [a, b]\nnested:\n  ok: true\n  none: null\n"))
	require.NoError(t, err)
	assert.Equal(t, sampleTree, tree, spew.Sdump(tree))

	tree, err = Decode(YAML, []byte("1: one\n2.5: two\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"1": "one", "2.5": "two"}, tree)
}

func TestDecode_CBOR(t *testing.T) {
	data, err := Encode(CBOR, sampleTree, Options{})
	require.NoError(t, err)

	tree, err := Decode(CBOR, data)
	require.NoError(t, err)
	assert.Equal(t, sampleTree, tree, spew.Sdump(tree))

	// Integer keys, byte strings and tags come from producers other than
	// Encode.
	raw, err := cbor.Marshal(map[any]any{
		uint64(1): []byte{1, 2},
		"when":    cbor.Tag{Number: 4000, Content: uint64(60)},
	})
	require.NoError(t, err)

	tree, err = Decode(CBOR, raw)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"1": "AQI=", "when": 60.0}, tree)
}

func TestDecode_Errors(t *testing.T) {
	tree, err := Decode(JSON, []byte("  \n"))
	require.NoError(t, err)
	assert.Nil(t, tree)

	_, err = Decode(JSON, []byte(`{"a":`))
	assert.ErrorContains(t, err, "decode json")

	_, err = Decode(YAML, []byte("a: [b"))
	assert.ErrorContains(t, err, "decode yaml")

	_, err = Decode(Format(9), []byte("x"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncode_JSON(t *testing.T) {
	tree := map[string]any{"b": []any{"x"}, "a": 1.0}

	out, err := Encode(JSON, tree, Options{})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":["x"]}`, string(out))

	out, err = Encode(JSON, tree, Options{Indent: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":["x"]}`, string(out))
	assert.Contains(t, string(out), "\n  \"a\": 1,\n")
}

func TestEncode_YAML(t *testing.T) {
	out, err := Encode(YAML, map[string]any{"b": 1.0, "a": map[string]any{"c": "x"}}, Options{Indent: 2})
	require.NoError(t, err)
	assert.Equal(t, "a:\n  c: x\nb: 1\n", string(out))
}

func TestEncode_CBORDeterministic(t *testing.T) {
	a, err := Encode(CBOR, map[string]any{"z": 1.0, "a": []any{true, "x"}, "m": nil}, Options{})
	require.NoError(t, err)

	b, err := Encode(CBOR, map[string]any{"m": nil, "a": []any{true, "x"}, "z": 1.0}, Options{})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestNormalize(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	got := Normalize(map[string]any{
		"int":    int64(-4),
		"uint":   uint8(7),
		"f32":    float32(0.5),
		"big":    big.NewInt(1 << 40),
		"when":   when,
		"nested": []any{map[any]any{nil: 1, true: "t"}},
	})

	assert.Equal(t, map[string]any{
		"int":    -4.0,
		"uint":   7.0,
		"f32":    0.5,
		"big":    float64(1 << 40),
		"when":   "2024-03-01T12:00:00Z",
		"nested": []any{map[string]any{"null": 1.0, "true": "t"}},
	}, got)
}

type City struct {
	Name       string    `cerialize:"name"`
	Population int       `cerialize:"population"`
	Founded    time.Time `cerialize:"founded"`
	Districts  []string  `cerialize:"districts"`
}

func newMapper(t *testing.T) *cerialize.Mapper {
	t.Helper()

	m := cerialize.NewMapper(cerialize.WithRegistry(metadata.NewRegistry()))
	require.NoError(t, m.Register(cerialize.TypeOf[City]()))

	return m
}

func TestMarshal(t *testing.T) {
	m := newMapper(t)
	oslo := &City{
		Name:       "Oslo",
		Population: 709000,
		Founded:    time.Date(1040, 1, 1, 0, 0, 0, 0, time.UTC),
		Districts:  []string{"Frogner"},
	}

	out, err := Marshal(m, oslo, nil, JSON, Options{})
	require.NoError(t, err)
	assert.Equal(t,
		`{"districts":["Frogner"],"founded":"1040-01-01T00:00:00Z","name":"Oslo","population":709000}`,
		string(out))

	for _, format := range []Format{JSON, YAML, CBOR} {
		data, err := Marshal(m, oslo, nil, format, Options{})
		require.NoError(t, err, format)

		out, err := Unmarshal(m, data, cerialize.TypeOf[City](), nil, format)
		require.NoError(t, err, format)

		got, ok := out.(*City)
		require.True(t, ok, "%s: %T", format, out)
		assert.Equal(t, oslo.Name, got.Name, format)
		assert.Equal(t, oslo.Population, got.Population, format)
		assert.True(t, oslo.Founded.Equal(got.Founded), "%s: %v", format, got.Founded)
		assert.Equal(t, oslo.Districts, got.Districts, format)
	}
}

func TestUnmarshal_Target(t *testing.T) {
	m := newMapper(t)
	city := &City{Name: "Bergen", Population: 1}

	out, err := Unmarshal(m, []byte("population: 291000\n"), nil, city, YAML)
	require.NoError(t, err)
	assert.Same(t, city, out)
	assert.Equal(t, "Bergen", city.Name)
	assert.Equal(t, 291000, city.Population)
}

func TestUnmarshalAs(t *testing.T) {
	m := newMapper(t)

	city, err := UnmarshalAs[City](m, []byte(`{"name":"Trondheim","districts":["Lade","Byåsen"]}`), JSON)
	require.NoError(t, err)
	assert.Equal(t, &City{Name: "Trondheim", Districts: []string{"Lade", "Byåsen"}}, city)

	_, err = UnmarshalAs[City](m, []byte(`{"name":`), JSON)
	assert.Error(t, err)
}
