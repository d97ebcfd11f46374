package cerialize

import (
	"errors"
	"strings"

	"github.com/weichx/cerialize/metadata"
)

var (
	ErrShapeMismatch    = errors.New("input does not have the expected shape")
	ErrFunctionValue    = errors.New("cannot deserialize a function, input is not a valid data tree")
	ErrNoSuchMember     = metadata.ErrNoSuchMember
	ErrNotAssignable    = errors.New("value is not assignable")
	ErrOverflow         = errors.New("number does not fit the target type")
	ErrUnexpectedResult = errors.New("unexpected result type")
	ErrNoConverter      = errors.New("converter does not handle this direction")
)

// ShapeError reports a map or array declaration applied to data of another
// shape. Key is the dotted member path it was found at, if any.
type ShapeError struct {
	Expected string
	Actual   string
	Key      string
}

func (e *ShapeError) Error() string {
	var b strings.Builder

	if e.Key != "" {
		b.WriteString(e.Key)
		b.WriteString(": ")
	}

	b.WriteString("expected input to be ")
	b.WriteString(article(e.Expected))
	b.WriteString(" but received: ")
	b.WriteString(e.Actual)

	return b.String()
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// atKey prefixes the member path of a ShapeError found in err.
func atKey(err error, key string) error {
	var se *ShapeError
	if errors.As(err, &se) {
		if se.Key == "" {
			se.Key = key
		} else {
			se.Key = key + "." + se.Key
		}
	}

	return err
}

func article(noun string) string {
	if noun == "" {
		return "a value"
	}

	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + noun
	}

	return "a " + noun
}
