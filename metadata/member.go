package metadata

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/weichx/cerialize/node"
)

var (
	ErrNoSuchMember     = errors.New("type has no such member")
	ErrUnexportedMember = errors.New("member is not exported")
)

// Member resolves the struct field backing member of t, following promoted
// fields of embedded structs. Non-struct types have no fields to check and
// return a zero StructField with a nil error.
func Member(t reflect.Type, member string) (reflect.StructField, error) {
	t = node.Base(t)
	if t == nil || t.Kind() != reflect.Struct {
		return reflect.StructField{}, nil
	}

	field, ok := t.FieldByName(member)
	if !ok {
		return reflect.StructField{}, fmt.Errorf("%w: %s.%s", ErrNoSuchMember, t, member)
	}

	if !field.IsExported() {
		return reflect.StructField{}, fmt.Errorf("%w: %s.%s", ErrUnexportedMember, t, member)
	}

	return field, nil
}
