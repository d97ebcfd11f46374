package cerialize

import (
	"fmt"
	"math"
	"reflect"

	"github.com/weichx/cerialize/primitive"
)

// assign stores value into the settable dst, converting between the data
// tree representation and the Go type of dst:
//   - nil zeroes dst
//   - numbers convert between numeric kinds, truncating toward zero
//   - pointers are allocated or dereferenced as needed
//   - sequences and string-keyed mappings are copied element by element
//   - fixed-size arrays are cut or zero-filled to their length
func assign(dst reflect.Value, value any) error {
	if value == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	return assignValue(dst, reflect.ValueOf(value))
}

func assignValue(dst reflect.Value, src reflect.Value) error {
	dt := dst.Type()

	if !src.IsValid() {
		dst.Set(reflect.Zero(dt))
		return nil
	}

	if src.Type().AssignableTo(dt) {
		dst.Set(src)
		return nil
	}

	switch src.Kind() {
	case reflect.Interface:
		if src.IsNil() {
			dst.Set(reflect.Zero(dt))
			return nil
		}
		return assignValue(dst, src.Elem())

	case reflect.Ptr:
		if src.IsNil() {
			dst.Set(reflect.Zero(dt))
			return nil
		}
		if dt.Kind() != reflect.Ptr {
			return assignValue(dst, src.Elem())
		}
	}

	switch dt.Kind() {
	case reflect.Ptr:
		ptr := reflect.New(dt.Elem())
		if err := assignValue(ptr.Elem(), src); err != nil {
			return err
		}
		dst.Set(ptr)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return assignNumber(dst, src)

	case reflect.String:
		if src.Kind() == reflect.String {
			dst.SetString(src.String())
			return nil
		}

	case reflect.Bool:
		if src.Kind() == reflect.Bool {
			dst.SetBool(src.Bool())
			return nil
		}

	case reflect.Slice:
		if src.Kind() == reflect.Slice || src.Kind() == reflect.Array {
			out := reflect.MakeSlice(dt, src.Len(), src.Len())
			for i := 0; i < src.Len(); i++ {
				if err := assignValue(out.Index(i), src.Index(i)); err != nil {
					return fmt.Errorf("[%d]: %w", i, err)
				}
			}
			dst.Set(out)
			return nil
		}

	case reflect.Array:
		if src.Kind() == reflect.Slice || src.Kind() == reflect.Array {
			out := reflect.New(dt).Elem()
			for i := 0; i < dt.Len() && i < src.Len(); i++ {
				if err := assignValue(out.Index(i), src.Index(i)); err != nil {
					return fmt.Errorf("[%d]: %w", i, err)
				}
			}
			dst.Set(out)
			return nil
		}

	case reflect.Map:
		if src.Kind() == reflect.Map && src.Type().Key().Kind() == reflect.String && dt.Key().Kind() == reflect.String {
			if src.IsNil() {
				dst.Set(reflect.Zero(dt))
				return nil
			}

			out := reflect.MakeMapWithSize(dt, src.Len())
			iter := src.MapRange()
			for iter.Next() {
				elem := reflect.New(dt.Elem()).Elem()
				if err := assignValue(elem, iter.Value()); err != nil {
					return fmt.Errorf("[%q]: %w", iter.Key().String(), err)
				}
				out.SetMapIndex(iter.Key().Convert(dt.Key()), elem)
			}
			dst.Set(out)
			return nil
		}
	}

	if src.Type().ConvertibleTo(dt) && src.Kind() == dt.Kind() {
		dst.Set(src.Convert(dt))
		return nil
	}

	return fmt.Errorf("%w: %s into %s", ErrNotAssignable, src.Type(), dt)
}

// assignNumber stores a numeric src into the numeric dst. Fractions are
// truncated toward zero; values outside the range of dst are ErrOverflow.
func assignNumber(dst reflect.Value, src reflect.Value) error {
	dt := dst.Type()

	switch src.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := src.Int()
		switch {
		case dst.CanInt():
			if dst.OverflowInt(i) {
				return overflow(dt, float64(i))
			}
			dst.SetInt(i)
		case dst.CanUint():
			if i < 0 || dst.OverflowUint(uint64(i)) {
				return overflow(dt, float64(i))
			}
			dst.SetUint(uint64(i))
		default:
			dst.SetFloat(float64(i))
		}
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := src.Uint()
		switch {
		case dst.CanInt():
			if u > math.MaxInt64 || dst.OverflowInt(int64(u)) {
				return overflow(dt, float64(u))
			}
			dst.SetInt(int64(u))
		case dst.CanUint():
			if dst.OverflowUint(u) {
				return overflow(dt, float64(u))
			}
			dst.SetUint(u)
		default:
			dst.SetFloat(float64(u))
		}
		return nil

	case reflect.Float32, reflect.Float64:
		return assignFloat(dst, src.Float())
	}

	return fmt.Errorf("%w: %s into %s", ErrNotAssignable, src.Type(), dt)
}

func assignFloat(dst reflect.Value, f float64) error {
	dt := dst.Type()

	if math.IsNaN(f) {
		return fmt.Errorf("%w: NaN into %s", ErrNotAssignable, dt)
	}

	switch {
	case dst.CanFloat():
		if dst.OverflowFloat(f) && !math.IsInf(f, 0) {
			return overflow(dt, f)
		}
		dst.SetFloat(f)

	case dst.CanInt():
		f = math.Trunc(f)
		if f < -0x1p63 || f >= 0x1p63 || dst.OverflowInt(int64(f)) {
			return overflow(dt, f)
		}
		dst.SetInt(int64(f))

	case dst.CanUint():
		f = math.Trunc(f)
		if f < 0 || f >= 0x1p64 || dst.OverflowUint(uint64(f)) {
			return overflow(dt, f)
		}
		dst.SetUint(uint64(f))
	}

	return nil
}

func overflow(dt reflect.Type, f float64) error {
	kind := primitive.FromReflectType(dt)
	if !kind.IsNumber() {
		return fmt.Errorf("%w: %v into %s", ErrOverflow, f, dt)
	}

	lo, hi := kind.Range()

	return fmt.Errorf("%w: %v is outside [%v, %v] of %s", ErrOverflow, f, lo, hi, dt)
}
