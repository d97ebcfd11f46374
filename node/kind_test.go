package node

import (
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type point struct{ X, Y int }

func TestKindOf(t *testing.T) {
	var nilMap map[string]any
	var nilPoint *point

	tests := []struct {
		name  string
		value any
		kind  Kind
		typ   string
	}{
		{"nil", nil, KindNull, "null"},
		{"nil map", nilMap, KindNull, "null"},
		{"nil pointer", nilPoint, KindNull, "null"},
		{"string", "x", KindString, "string"},
		{"float", 1.5, KindNumber, "number"},
		{"uint8", uint8(3), KindNumber, "number"},
		{"bool", true, KindBoolean, "boolean"},
		{"date", time.Now(), KindDate, "object"},
		{"regexp", regexp.MustCompile("a"), KindRegExp, "object"},
		{"tree array", []any{1.0}, KindArray, "array"},
		{"typed slice", []int{1}, KindArray, "array"},
		{"fixed array", [2]int{}, KindArray, "array"},
		{"tree object", map[string]any{}, KindObject, "object"},
		{"struct pointer", &point{}, KindObject, "object"},
		{"int keyed map", map[int]string{}, KindOther, "unknown"},
		{"func", func() {}, KindFunction, "function"},
		{"chan", make(chan int), KindOther, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := KindOf(tt.value)
			assert.Equal(t, tt.kind, k)
			assert.Equal(t, tt.typ, k.TypeName())
		})
	}
}

func TestDispatch(t *testing.T) {
	assert.Equal(t, DispatcherPrimitive, Dispatch(reflect.TypeOf(0)))
	assert.Equal(t, DispatcherPrimitive, Dispatch(reflect.TypeOf(time.Time{})))
	assert.Equal(t, DispatcherPrimitive, Dispatch(reflect.TypeOf(regexp.MustCompile("x"))))
	assert.Equal(t, DispatcherInterface, Dispatch(reflect.TypeOf((*any)(nil)).Elem()))
	assert.Equal(t, DispatcherSlice, Dispatch(reflect.TypeOf([]point{})))
	assert.Equal(t, DispatcherSlice, Dispatch(reflect.TypeOf(&[3]int{})))
	assert.Equal(t, DispatcherMap, Dispatch(reflect.TypeOf(map[string]int{})))
	assert.Equal(t, DispatcherStruct, Dispatch(reflect.TypeOf(&point{})))
	assert.Equal(t, DispatcherUnknown, Dispatch(reflect.TypeOf(make(chan int))))
	assert.Equal(t, DispatcherUnknown, Dispatch(nil))
}

func TestPtrDepthAndBase(t *testing.T) {
	p := &point{}
	depth, base := PtrDepthAndBase(reflect.TypeOf(&p))
	assert.Equal(t, 2, depth)
	assert.Equal(t, reflect.TypeOf(point{}), base)

	assert.Equal(t, "map[string][]*github.com/weichx/cerialize/node.point",
		TypeString(reflect.TypeOf(map[string][]*point{})))
}
