package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeKey(t *testing.T) {
	{ // Packing is independent of vertex order
		en := NewEdgeKey([2]int{1, 0})
		assert.Equal(t, EdgeKey(1<<32), en)
		assert.Equal(t, [2]int{0, 1}, en.GetVertices(false))
		assert.Equal(t, [2]int{1, 0}, en.GetVertices(true))

		en = NewEdgeKey([2]int{0, 1})
		assert.Equal(t, EdgeKey(1<<32), en)

		en = NewEdgeKey([2]int{100, 1})
		assert.Equal(t, EdgeKey(100*(1<<32)+1), en)
		assert.Equal(t, [2]int{1, 100}, en.GetVertices(false))
		assert.Equal(t, NewEdgeKey([2]int{1, 100}), en)

		// Test maximum/minimum indices
		en = NewEdgeKey([2]int{1<<32 - 1, 1<<32 - 1})
		assert.Equal(t, EdgeKey(1<<64-1), en)
		assert.Equal(t, [2]int{1<<32 - 1, 1<<32 - 1}, en.GetVertices(false))
	}
	{
		en := NewEdgeKey([2]int{7, 3})
		assert.True(t, en.Contains(3))
		assert.True(t, en.Contains(7))
		assert.False(t, en.Contains(4))
		assert.Equal(t, "[3,7]", en.String())
	}
	{
		assert.Panics(t, func() { NewEdgeKey([2]int{-1, 2}) })
	}
}
