package maze_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
)

func TestListing(t *testing.T) {
	cases := []struct {
		name  string
		edges []maze.Edge
		want  string
	}{
		{"Nil", nil, "[]"},
		{"Empty", []maze.Edge{}, "[]"},
		{"One", []maze.Edge{{From: v(0, 0), To: v(1, 0)}}, "[((0, 0), (1, 0))]"},
		{"Two", []maze.Edge{{From: v(0, 0), To: v(1, 0)}, {From: v(1, 0), To: v(1, 1)}}, "[((0, 0), (1, 0)), ((1, 0), (1, 1))]"},
		{"Wide", []maze.Edge{{From: v(198, 199), To: v(199, 199)}}, "[((198, 199), (199, 199))]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, maze.Listing(tc.edges))

			var buf bytes.Buffer
			require.NoError(t, maze.Format(&buf, tc.edges))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestEdge_StringAndKey(t *testing.T) {
	e := maze.Edge{From: v(2, 1), To: v(1, 1)}
	assert.Equal(t, "((2, 1), (1, 1))", e.String())
	assert.Equal(t, maze.Edge{From: v(1, 1), To: v(2, 1)}, e.Key())
	assert.Equal(t, e.Key(), e.Key().Key())

	vert := maze.Edge{From: v(0, 1), To: v(0, 0)}
	assert.Equal(t, maze.Edge{From: v(0, 0), To: v(0, 1)}, vert.Key())
}

// failWriter rejects every write.
type failWriter struct{}

var errSink = errors.New("sink closed")

func (failWriter) Write([]byte) (int, error) { return 0, errSink }

func TestFormat_WriteError(t *testing.T) {
	err := maze.Format(failWriter{}, []maze.Edge{{From: v(0, 0), To: v(1, 0)}})
	assert.ErrorIs(t, err, errSink)
}
