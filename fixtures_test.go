package cerialize_test

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/weichx/cerialize"
	"github.com/weichx/cerialize/metadata"
)

type Point struct {
	X float64 `cerialize:"x"`
	Y float64 `cerialize:"y"`
}

type Shape struct {
	Name    string           `cerialize:"name"`
	Origin  Point            `cerialize:"origin"`
	Anchor  *Point           `cerialize:"anchor"`
	Corners []Point          `cerialize:"corners"`
	Labels  map[string]Point `cerialize:"labels"`
	Created time.Time        `cerialize:"created"`
	Extra   any              `cerialize:"extra"`
	Hidden  string
}

type Drawing struct {
	Title  string  `cerialize:"title"`
	Shapes []Shape `cerialize:"shapes"`
}

// newMapper returns a mapper over a fresh registry with the fixture types
// registered.
func newMapper(t *testing.T, opts ...cerialize.Option) *cerialize.Mapper {
	t.Helper()

	reg := metadata.NewRegistry(metadata.WithLogger(zaptest.NewLogger(t)))
	opts = append([]cerialize.Option{
		cerialize.WithRegistry(reg),
		cerialize.WithLogger(zaptest.NewLogger(t)),
	}, opts...)

	m := cerialize.NewMapper(opts...)
	require.NoError(t, m.Register(cerialize.TypeOf[Point]()))
	require.NoError(t, m.Register(cerialize.TypeOf[Shape]()))
	require.NoError(t, m.Register(cerialize.TypeOf[Drawing]()))

	return m
}

func dump(v any) string {
	return spew.Sdump(v)
}
