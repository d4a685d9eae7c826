package utils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SquaredAreaX4 returns |(b-a) x (c-a)|^2, four times the squared triangle area, without a square root
func SquaredAreaX4(a, b, c r3.Vec) float64 {
	return r3.Norm2(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}

func TriangleArea(a, b, c r3.Vec) float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}

// CornerCosines returns the cosine of the interior angle at a, b and c
func CornerCosines(a, b, c r3.Vec) (cosines [3]float64) {
	cosines[0] = r3.Dot(r3.Unit(r3.Sub(b, a)), r3.Unit(r3.Sub(c, a)))
	cosines[1] = r3.Dot(r3.Unit(r3.Sub(a, b)), r3.Unit(r3.Sub(c, b)))
	cosines[2] = r3.Dot(r3.Unit(r3.Sub(a, c)), r3.Unit(r3.Sub(b, c)))
	return
}

/*
MaxCosine is the largest interior angle cosine of the triangle, which belongs to its smallest angle.
Minimizing it over a set of triangles maximizes the worst angle.
*/
func MaxCosine(a, b, c r3.Vec) float64 {
	cs := CornerCosines(a, b, c)
	return math.Max(cs[0], math.Max(cs[1], cs[2]))
}

// MinAngle returns the smallest interior angle in radians
func MinAngle(a, b, c r3.Vec) float64 {
	cosMax := math.Max(-1, math.Min(1, MaxCosine(a, b, c)))
	return math.Acos(cosMax)
}

// PolygonArea sums the fan triangles of a planar polygon around its centroid
func PolygonArea(pts []r3.Vec) (area float64) {
	if len(pts) < 3 {
		return
	}
	var centroid r3.Vec
	for _, p := range pts {
		centroid = r3.Add(centroid, p)
	}
	centroid = r3.Scale(1/float64(len(pts)), centroid)
	var normal r3.Vec
	for i := range pts {
		normal = r3.Add(normal, r3.Cross(r3.Sub(pts[i], centroid), r3.Sub(pts[(i+1)%len(pts)], centroid)))
	}
	return 0.5 * r3.Norm(normal)
}
