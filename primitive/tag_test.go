package primitive_test

import (
	"fmt"
	"reflect"
	"regexp"
	"time"

	"github.com/weichx/cerialize/primitive"
)

func Example() {
	type Celsius float64
	type Label string
	type Empty struct{}

	fmt.Println(primitive.TagOf(reflect.TypeOf(int(0))))
	fmt.Println(primitive.TagOf(reflect.TypeOf(Celsius(0))))
	fmt.Println(primitive.TagOf(reflect.TypeOf(Label(""))))
	fmt.Println(primitive.TagOf(reflect.TypeOf(true)))
	fmt.Println(primitive.TagOf(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.TagOf(reflect.TypeOf(&time.Time{})))
	fmt.Println(primitive.TagOf(reflect.TypeOf(regexp.MustCompile("x"))))
	fmt.Println(primitive.TagOf(reflect.TypeOf(Empty{})))
	// Output:
	// Number
	// Number
	// String
	// Boolean
	// Date
	// Date
	// RegExp
	// Tag(0)
}

func ExampleFromReflectType() {
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int16(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Second)))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf([]int{})))
	// Output:
	// KindInt16
	// KindDuration
	// KindEnum(0)
}
