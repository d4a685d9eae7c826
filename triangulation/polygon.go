package triangulation

import (
	"github.com/pkg/errors"

	"github.com/notargets/meshtri/surfacemesh"
)

// corner is a polygon vertex together with the boundary halfedge entering it
type corner struct {
	h surfacemesh.Halfedge
	v surfacemesh.Vertex
}

// polygon is the transient per-face state, corner 0 is the target of the face's stored halfedge
type polygon struct {
	face      surfacemesh.Face
	corners   []corner
	objective Objective
}

func (p *polygon) size() int { return len(p.corners) }

// adjacent reports whether corners i and j share a polygon edge, including the closing edge n-1 -> 0
func (p *polygon) adjacent(i, j int) bool {
	if i > j {
		i, j = j, i
	}
	return j-i == 1 || (i == 0 && j == p.size()-1)
}

// collectPolygon walks the face boundary and fails before any mutation if a corner is non-manifold
func (t *Triangulator) collectPolygon(f surfacemesh.Face) (poly *polygon, err error) {
	var (
		m     = t.mesh
		h0    = m.Halfedge(f)
		h     = h0
		limit = m.NHalfedges()
	)
	poly = &polygon{face: f}
	for {
		v := m.ToVertex(h)
		if !m.IsManifold(v) {
			return nil, errors.Wrapf(ErrNonManifold, "face %d, vertex %d", f, v)
		}
		poly.corners = append(poly.corners, corner{h: h, v: v})
		if h = m.NextHalfedge(h); h == h0 {
			break
		}
		if !h.IsValid() || len(poly.corners) > limit {
			return nil, errors.Wrapf(ErrCorruptFace, "face %d after %d corners", f, len(poly.corners))
		}
	}
	return
}
