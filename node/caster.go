package node

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

var (
	ErrIsNotACaster         = errors.New("provided function is not a recognizable caster")
	ErrCasterIsNotAFunction = errors.New("provided caster is not a function")
	ErrDoublePointer        = errors.New("caster function does not support double pointers")
	ErrCasterArgument       = errors.New("value is not acceptable as caster argument")
)

type Caster struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// ParseCaster inspects the provided function and returns a Caster struct if it is a valid caster function.
//
// Supports interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
func ParseCaster(fn any) (Caster, error) {
	if fn == nil {
		return Caster{}, ErrCasterIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Caster{}, ErrCasterIsNotAFunction
	}

	if fnVal.IsNil() || fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.IsVariadic() {
		return Caster{}, ErrIsNotACaster
	}

	src := fnType.In(0)
	if src.Kind() == reflect.Ptr && src.Elem().Kind() == reflect.Ptr {
		return Caster{}, ErrDoublePointer
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return Caster{}, ErrDoublePointer
	}

	alias, name := funcName(fnVal)

	caster := Caster{
		Src:          src,
		Dst:          dst,
		Name:         name,
		PackageAlias: alias,
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Caster{}, ErrIsNotACaster

	case 1:
		return caster, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return Caster{}, ErrIsNotACaster
		case last.Kind() == reflect.Bool:
			caster.HasBool = true
		case isError(last):
			caster.HasErr = true
		}
		return caster, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return Caster{}, ErrIsNotACaster
		}

		caster.HasBool = true
		caster.HasErr = true
		return caster, nil
	}
}

// String returns the qualified function name, e.g. "strconv.Itoa".
func (c Caster) String() string {
	if c.PackageAlias == "" {
		return c.Name
	}

	return c.PackageAlias + "." + c.Name
}

// Call invokes the caster with arg converted to its input type. A false
// bool result yields a nil value. A returned error is passed through as is.
func (c Caster) Call(arg any) (any, error) {
	if !c.fn.IsValid() {
		return nil, ErrIsNotACaster
	}

	in, err := argument(arg, c.Src)
	if err != nil {
		return nil, err
	}

	out := c.fn.Call([]reflect.Value{in})

	if c.HasErr {
		if errVal := out[len(out)-1]; !errVal.IsNil() {
			return nil, errVal.Interface().(error)
		}
	}

	if c.HasBool && !out[1].Bool() {
		return nil, nil
	}

	result := out[0]
	switch result.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		if result.IsNil() {
			return nil, nil
		}
	}

	return result.Interface(), nil
}

func argument(arg any, src reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(src), nil
	}

	val := reflect.ValueOf(arg)
	switch {
	case val.Type().AssignableTo(src):
		return val, nil
	case val.Kind() == reflect.Ptr && !val.IsNil() && val.Elem().Type().AssignableTo(src):
		return val.Elem(), nil
	case src.Kind() == reflect.Ptr && val.Type().AssignableTo(src.Elem()):
		ptr := reflect.New(src.Elem())
		ptr.Elem().Set(val)
		return ptr, nil
	case isNumeric(val.Kind()) && isNumeric(src.Kind()):
		return val.Convert(src), nil
	case val.Kind() == reflect.String && src.Kind() == reflect.String:
		return val.Convert(src), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: %s into %s", ErrCasterArgument, val.Type(), src)
}

func funcName(fnVal reflect.Value) (alias, name string) {
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	if fnPC == nil {
		return "", ""
	}

	full := fnPC.Name()
	dir, file := path.Split(full)

	parts := strings.SplitN(file, ".", 2)
	if len(parts) != 2 {
		return "", dir + file
	}

	return parts[0], parts[1]
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
