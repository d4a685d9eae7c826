package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTriangleMeasures(t *testing.T) {
	var (
		a = r3.Vec{X: 0, Y: 0, Z: 1}
		b = r3.Vec{X: 2, Y: 0, Z: 1}
		c = r3.Vec{X: 0, Y: 2, Z: 1}
	)
	assert.Equal(t, 16., SquaredAreaX4(a, b, c))
	assert.InDelta(t, 2., TriangleArea(a, b, c), 1.e-15)
	cs := CornerCosines(a, b, c)
	assert.InDelta(t, 0., cs[0], 1.e-15)
	assert.InDelta(t, math.Sqrt2/2, cs[1], 1.e-15)
	assert.InDelta(t, math.Sqrt2/2, cs[2], 1.e-15)
	assert.InDelta(t, math.Sqrt2/2, MaxCosine(a, b, c), 1.e-15)
	assert.InDelta(t, math.Pi/4, MinAngle(a, b, c), 1.e-12)

	// Equilateral triangle has the smallest possible worst cosine
	e := r3.Vec{X: 1, Y: math.Sqrt(3)}
	assert.InDelta(t, 0.5, MaxCosine(r3.Vec{}, r3.Vec{X: 2}, e), 1.e-12)

	// The measures ignore vertex order
	assert.Equal(t, SquaredAreaX4(a, b, c), SquaredAreaX4(c, a, b))
	assert.InDelta(t, MaxCosine(a, b, c), MaxCosine(b, c, a), 1.e-15)
}

func TestPolygonArea(t *testing.T) {
	square := []r3.Vec{{X: 0}, {X: 2}, {X: 2, Y: 2}, {Y: 2}}
	assert.InDelta(t, 4., PolygonArea(square), 1.e-15)
	// Tilted out of the XY plane the area is unchanged
	tilted := []r3.Vec{{X: 0}, {X: 2}, {X: 2, Y: 2, Z: 2}, {Y: 2, Z: 2}}
	assert.InDelta(t, 4*math.Sqrt2, PolygonArea(tilted), 1.e-12)
	assert.Equal(t, 0., PolygonArea(square[:2]))
}
