package triangulation

import (
	"math"

	"github.com/notargets/meshtri/surfacemesh"
	"github.com/notargets/meshtri/utils"
)

// triangleWeight is the cost of triangle (i,m,k), i < m < k, or +Inf when the triangle must not be used
func (t *Triangulator) triangleWeight(poly *polygon, i, m, k int) (w float64) {
	var (
		a = poly.corners[i].v
		b = poly.corners[m].v
		c = poly.corners[k].v
	)
	if t.policy == RejectInteriorChords {
		for _, pair := range [3][2]int{{i, m}, {m, k}, {i, k}} {
			if poly.adjacent(pair[0], pair[1]) {
				continue
			}
			if t.isInteriorEdge(poly.corners[pair[0]].v, poly.corners[pair[1]].v) {
				return math.Inf(1)
			}
		}
	}
	// A triangle of three existing edges would close off a loop that no later split can reach
	if t.isEdge(a, b) && t.isEdge(b, c) && t.isEdge(c, a) {
		return math.Inf(1)
	}
	var (
		pa = t.mesh.Position(a)
		pb = t.mesh.Position(b)
		pc = t.mesh.Position(c)
	)
	switch poly.objective {
	case MaxAngle:
		w = utils.MaxCosine(pa, pb, pc)
	default:
		w = utils.SquaredAreaX4(pa, pb, pc)
	}
	if math.IsNaN(w) {
		w = math.Inf(1)
	}
	return
}

func (t *Triangulator) isEdge(a, b surfacemesh.Vertex) bool {
	return t.mesh.FindHalfedge(a, b).IsValid()
}

// isInteriorEdge reports an existing edge with a face on both sides
func (t *Triangulator) isInteriorEdge(a, b surfacemesh.Vertex) bool {
	h := t.mesh.FindHalfedge(a, b)
	if !h.IsValid() {
		return false
	}
	return !t.mesh.IsBoundary(h) && !t.mesh.IsBoundary(t.mesh.OppositeHalfedge(h))
}
