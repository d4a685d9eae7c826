package surfacemesh

import (
	"github.com/pkg/errors"

	"github.com/notargets/meshtri/types"
)

var ErrInconsistent = errors.New("inconsistent mesh connectivity")

// Validate checks the halfedge connectivity invariants and returns the first violation found
func (m *SurfaceMesh) Validate() error {
	if len(m.halfedges)%2 != 0 {
		return errors.Wrapf(ErrInconsistent, "odd halfedge count %d", len(m.halfedges))
	}
	for i, hc := range m.halfedges {
		h := Halfedge(i)
		if !hc.to.IsValid() || int(hc.to) >= len(m.points) {
			return errors.Wrapf(ErrInconsistent, "halfedge %d points to vertex %d", h, hc.to)
		}
		if hc.to == m.FromVertex(h) {
			return errors.Wrapf(ErrInconsistent, "halfedge %d is a loop at vertex %d", h, hc.to)
		}
		if !hc.next.IsValid() {
			return errors.Wrapf(ErrInconsistent, "halfedge %d has no next halfedge", h)
		}
		if m.FromVertex(hc.next) != hc.to {
			return errors.Wrapf(ErrInconsistent, "halfedge %d ends at %d but next %d starts at %d",
				h, hc.to, hc.next, m.FromVertex(hc.next))
		}
		if m.halfedges[hc.next].face != hc.face {
			return errors.Wrapf(ErrInconsistent, "halfedge %d and next %d are on different faces", h, hc.next)
		}
	}
	for i, h0 := range m.faces {
		f := Face(i)
		if m.halfedges[h0].face != f {
			return errors.Wrapf(ErrInconsistent, "face %d halfedge %d belongs to face %d", f, h0, m.halfedges[h0].face)
		}
		if n := m.Valence(f); n < 3 {
			return errors.Wrapf(ErrInconsistent, "face %d has %d vertices", f, n)
		}
	}
	for i := 0; i < m.NEdges(); i++ {
		h := m.EdgeHalfedge(Edge(i), 0)
		key := types.NewEdgeKey([2]int{int(m.FromVertex(h)), int(m.ToVertex(h))})
		if e, ok := m.edgeIndex[key]; !ok || e != Edge(i) {
			return errors.Wrapf(ErrInconsistent, "edge %d (%s) missing from the edge index", i, key)
		}
		if m.IsBoundary(h) && m.IsBoundary(h^1) {
			return errors.Wrapf(ErrInconsistent, "edge %d has no face", i)
		}
	}
	return nil
}
