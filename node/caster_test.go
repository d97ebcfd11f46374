package node_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weichx/cerialize/node"
)

type moreThanError interface {
	error
	More()
}

func empty()                          { panic("not implemented") }
func wrong(int) (string, error, bool) { panic("not implemented") }

func full(int) (string, bool, error)          { panic("not implemented") }
func customError(int) (string, moreThanError) { panic("not implemented") }

func ExampleCaster() {
	desc, err := node.ParseCaster(full)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = node.ParseCaster(strconv.Itoa)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = node.ParseCaster(strconv.Atoi)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = node.ParseCaster(customError)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	_, err = node.ParseCaster(empty)
	fmt.Println(err)

	_, err = node.ParseCaster(wrong)
	fmt.Println(err)

	_, err = node.ParseCaster(42)
	fmt.Println(err)

	// Output:
	// <nil> node_test full int string true true
	// <nil> strconv Itoa int string false false
	// <nil> strconv Atoi string int false true
	// <nil> node_test customError int string false true
	// provided function is not a recognizable caster
	// provided function is not a recognizable caster
	// provided caster is not a function
}

func ExampleCaster_Call() {
	itoa, _ := node.ParseCaster(strconv.Itoa)

	// float64 is what a decoded data tree carries for numbers
	out, err := itoa.Call(float64(42))
	fmt.Printf("%q %v\n", out, err)

	atoi, _ := node.ParseCaster(strconv.Atoi)
	_, err = atoi.Call("forty-two")
	fmt.Println(err != nil)

	// Output:
	// "42" <nil>
	// true
}

func TestCaster_CallBool(t *testing.T) {
	lookup := func(key string) (int, bool) {
		v, ok := map[string]int{"one": 1}[key]
		return v, ok
	}

	c, err := node.ParseCaster(lookup)
	require.NoError(t, err)
	assert.True(t, c.HasBool)

	out, err := c.Call("one")
	require.NoError(t, err)
	assert.Equal(t, 1, out)

	out, err = c.Call("two")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCaster_CallErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	c, err := node.ParseCaster(func(string) (string, error) { return "", boom })
	require.NoError(t, err)

	_, err = c.Call("x")
	assert.Same(t, boom, err)
}

func TestCaster_CallArgument(t *testing.T) {
	c, err := node.ParseCaster(func(p *int) int { return *p * 2 })
	require.NoError(t, err)

	out, err := c.Call(21)
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	_, err = c.Call(map[string]any{})
	assert.ErrorIs(t, err, node.ErrCasterArgument)

	nilOut, err := node.ParseCaster(func(string) []int { return nil })
	require.NoError(t, err)

	out, err = nilOut.Call(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestParseCaster_DoublePointer(t *testing.T) {
	_, err := node.ParseCaster(func(**int) int { return 0 })
	assert.ErrorIs(t, err, node.ErrDoublePointer)
}
