package metadata

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weichx/cerialize/primitive"
)

type upper struct{}

func (upper) Serialize(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errors.New("not a string")
	}
	return strings.ToUpper(s), nil
}

func (upper) Deserialize(data, _ any, _ InstantiationMethod) (any, error) {
	return strings.ToLower(data.(string)), nil
}

type serializeOnly struct{}

func (serializeOnly) Serialize(v any) (any, error) { return v, nil }

func TestConverterOf(t *testing.T) {
	tests := []struct {
		name string
		arg  any
		kind ConverterKind
		ok   bool
	}{
		{"nil", nil, ConverterNone, false},
		{"zero tag", primitive.Tag(0), ConverterNone, false},
		{"tag", primitive.Number, ConverterPrimitive, true},
		{"primitive type", reflect.TypeOf(time.Time{}), ConverterPrimitive, true},
		{"struct type", reflect.TypeOf(&parent{}), ConverterType, true},
		{"object", upper{}, ConverterObject, true},
		{"half object", serializeOnly{}, ConverterObject, true},
		{"caster", strconv.Itoa, ConverterFunc, true},
		{"deserialize func", func(data, target any, m InstantiationMethod) (any, error) {
			return data, nil
		}, ConverterFunc, true},
		{"converter", PrimitiveConverter(primitive.Date), ConverterPrimitive, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok, err := ConverterOf(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, c.Kind)
		})
	}
}

func TestConverterOf_Errors(t *testing.T) {
	_, ok, err := ConverterOf(42)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNotAConverter)

	_, ok, err = ConverterOf(func(a, b int) int { return a + b })
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNotAConverter)
}

func TestConverterOf_Shapes(t *testing.T) {
	c, _, err := ConverterOf(reflect.TypeOf(&parent{}))
	require.NoError(t, err)
	assert.Equal(t, parentType, c.Type)

	obj, _, err := ConverterOf(upper{})
	require.NoError(t, err)

	out, err := obj.Serialize("abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)

	out, err = obj.Deserialize("ABC", nil, New)
	require.NoError(t, err)
	assert.Equal(t, "abc", out)

	half, _, err := ConverterOf(serializeOnly{})
	require.NoError(t, err)
	assert.Nil(t, half.Deserialize)

	caster, _, err := ConverterOf(strconv.Itoa)
	require.NoError(t, err)
	assert.Equal(t, "strconv.Itoa", caster.Name)

	out, err = caster.Deserialize(float64(7), nil, New)
	require.NoError(t, err)
	assert.Equal(t, "7", out)
}
