package surfacemesh

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshtri/types"
)

var (
	ErrDegenerateFace = errors.New("degenerate face")
	ErrComplexEdge    = errors.New("complex edge")
	ErrInvalidHandle  = errors.New("invalid handle")
	ErrFaceMismatch   = errors.New("halfedges do not share a face")
)

// Vertex, Halfedge, Edge and Face are indices into the mesh's element arrays, -1 is invalid
type (
	Vertex   int
	Halfedge int
	Edge     int
	Face     int
)

const (
	InvalidVertex   Vertex   = -1
	InvalidHalfedge Halfedge = -1
	InvalidEdge     Edge     = -1
	InvalidFace     Face     = -1
)

func (v Vertex) IsValid() bool   { return v >= 0 }
func (h Halfedge) IsValid() bool { return h >= 0 }
func (e Edge) IsValid() bool     { return e >= 0 }
func (f Face) IsValid() bool     { return f >= 0 }

type halfedgeConn struct {
	to   Vertex
	next Halfedge
	face Face // InvalidFace for a boundary halfedge
}

/*
SurfaceMesh is a half-edge polygon mesh.

Edge e owns halfedges 2e and 2e+1, so the opposite of h is always h^1. Every edge is created with both
halfedges; a halfedge without a face is a boundary halfedge and is linked into a boundary loop.
*/
type SurfaceMesh struct {
	points    []r3.Vec
	outgoing  [][]Halfedge // Vertex to outgoing halfedges
	halfedges []halfedgeConn
	faces     []Halfedge // Face to one of its halfedges
	edgeIndex map[types.EdgeKey]Edge
}

func NewSurfaceMesh() *SurfaceMesh {
	return &SurfaceMesh{
		edgeIndex: make(map[types.EdgeKey]Edge),
	}
}

func (m *SurfaceMesh) NVertices() int  { return len(m.points) }
func (m *SurfaceMesh) NHalfedges() int { return len(m.halfedges) }
func (m *SurfaceMesh) NEdges() int     { return len(m.halfedges) / 2 }
func (m *SurfaceMesh) NFaces() int     { return len(m.faces) }

// Faces returns the handles of all faces currently in the mesh
func (m *SurfaceMesh) Faces() (faces []Face) {
	faces = make([]Face, len(m.faces))
	for i := range faces {
		faces[i] = Face(i)
	}
	return
}

func (m *SurfaceMesh) AddVertex(p r3.Vec) (v Vertex) {
	v = Vertex(len(m.points))
	m.points = append(m.points, p)
	m.outgoing = append(m.outgoing, nil)
	return
}

func (m *SurfaceMesh) Position(v Vertex) r3.Vec { return m.points[v] }

func (m *SurfaceMesh) SetPosition(v Vertex, p r3.Vec) { m.points[v] = p }

func (m *SurfaceMesh) Halfedge(f Face) Halfedge { return m.faces[f] }

func (m *SurfaceMesh) NextHalfedge(h Halfedge) Halfedge { return m.halfedges[h].next }

func (m *SurfaceMesh) OppositeHalfedge(h Halfedge) Halfedge { return h ^ 1 }

func (m *SurfaceMesh) ToVertex(h Halfedge) Vertex { return m.halfedges[h].to }

func (m *SurfaceMesh) FromVertex(h Halfedge) Vertex { return m.halfedges[h^1].to }

func (m *SurfaceMesh) FaceOf(h Halfedge) Face { return m.halfedges[h].face }

func (m *SurfaceMesh) EdgeOf(h Halfedge) Edge { return Edge(h >> 1) }

func (m *SurfaceMesh) EdgeHalfedge(e Edge, i int) Halfedge { return Halfedge(2*int(e) + i) }

func (m *SurfaceMesh) IsBoundary(h Halfedge) bool { return !m.halfedges[h].face.IsValid() }

// IsBoundaryEdge reports whether either side of the edge is open
func (m *SurfaceMesh) IsBoundaryEdge(e Edge) bool {
	h := m.EdgeHalfedge(e, 0)
	return m.IsBoundary(h) || m.IsBoundary(h^1)
}

// PrevHalfedge walks the cycle containing h, it returns InvalidHalfedge for an unlinked cycle
func (m *SurfaceMesh) PrevHalfedge(h Halfedge) Halfedge {
	var (
		limit = len(m.halfedges)
		hh    = h
	)
	for i := 0; i < limit; i++ {
		next := m.halfedges[hh].next
		if !next.IsValid() {
			return InvalidHalfedge
		}
		if next == h {
			return hh
		}
		hh = next
	}
	return InvalidHalfedge
}

// FindHalfedge returns the halfedge from a to b, or InvalidHalfedge when the vertices are not connected
func (m *SurfaceMesh) FindHalfedge(a, b Vertex) Halfedge {
	if !a.IsValid() || !b.IsValid() || a == b {
		return InvalidHalfedge
	}
	e, ok := m.edgeIndex[types.NewEdgeKey([2]int{int(a), int(b)})]
	if !ok {
		return InvalidHalfedge
	}
	h := m.EdgeHalfedge(e, 0)
	if m.halfedges[h].to == b {
		return h
	}
	return h ^ 1
}

func (m *SurfaceMesh) FindEdge(a, b Vertex) Edge {
	h := m.FindHalfedge(a, b)
	if !h.IsValid() {
		return InvalidEdge
	}
	return m.EdgeOf(h)
}

// OutgoingHalfedges returns the halfedges leaving v, in creation order
func (m *SurfaceMesh) OutgoingHalfedges(v Vertex) []Halfedge { return m.outgoing[v] }

/*
IsManifold reports whether the faces around v form a single fan: at most one outgoing boundary halfedge, and
rotating around v through opposite/next visits every outgoing halfedge. Isolated vertices are manifold.
*/
func (m *SurfaceMesh) IsManifold(v Vertex) bool {
	var (
		out   = m.outgoing[v]
		start Halfedge
		nb    int
	)
	if len(out) == 0 {
		return true
	}
	start = out[0]
	for _, h := range out {
		if m.IsBoundary(h) {
			nb++
			start = h
		}
	}
	if nb > 1 {
		return false
	}
	var (
		count int
		h     = start
	)
	for {
		count++
		h = m.halfedges[h^1].next
		if !h.IsValid() || count > len(out) {
			return false
		}
		if h == start {
			break
		}
	}
	return count == len(out)
}

// FaceVertices returns the vertices of f in boundary order, starting at ToVertex(Halfedge(f))
func (m *SurfaceMesh) FaceVertices(f Face) (verts []Vertex) {
	h0 := m.faces[f]
	h := h0
	for {
		verts = append(verts, m.halfedges[h].to)
		h = m.halfedges[h].next
		if h == h0 || len(verts) > len(m.halfedges) {
			break
		}
	}
	return
}

func (m *SurfaceMesh) Valence(f Face) int { return len(m.FaceVertices(f)) }

func (m *SurfaceMesh) newEdge(a, b Vertex) (h Halfedge) {
	e := Edge(len(m.halfedges) / 2)
	m.halfedges = append(m.halfedges,
		halfedgeConn{to: b, next: InvalidHalfedge, face: InvalidFace},
		halfedgeConn{to: a, next: InvalidHalfedge, face: InvalidFace},
	)
	h = m.EdgeHalfedge(e, 0)
	m.outgoing[a] = append(m.outgoing[a], h)
	m.outgoing[b] = append(m.outgoing[b], h^1)
	m.edgeIndex[types.NewEdgeKey([2]int{int(a), int(b)})] = e
	return
}

/*
AddFace adds a polygon with the given boundary vertices. Existing edges are reused when their halfedge in the
face's direction is still open; a halfedge already owned by another face is a complex edge and is rejected.
The face's stored halfedge is the one entering vs[0], so FaceVertices(f) reproduces vs.
*/
func (m *SurfaceMesh) AddFace(vs ...Vertex) (f Face, err error) {
	var (
		n = len(vs)
	)
	if n < 3 {
		return InvalidFace, errors.Wrapf(ErrDegenerateFace, "face needs at least 3 vertices, have %d", n)
	}
	seen := make(map[Vertex]bool, n)
	for _, v := range vs {
		if !v.IsValid() || int(v) >= len(m.points) {
			return InvalidFace, errors.Wrapf(ErrInvalidHandle, "vertex %d", v)
		}
		if seen[v] {
			return InvalidFace, errors.Wrapf(ErrDegenerateFace, "vertex %d repeated", v)
		}
		seen[v] = true
	}
	hs := make([]Halfedge, n)
	for i := 0; i < n; i++ {
		a, b := vs[i], vs[(i+1)%n]
		hs[i] = m.FindHalfedge(a, b)
		if hs[i].IsValid() && !m.IsBoundary(hs[i]) {
			return InvalidFace, errors.Wrapf(ErrComplexEdge, "halfedge %d->%d already has a face", a, b)
		}
	}
	for i := 0; i < n; i++ {
		if !hs[i].IsValid() {
			hs[i] = m.newEdge(vs[i], vs[(i+1)%n])
		}
	}
	f = Face(len(m.faces))
	m.faces = append(m.faces, hs[n-1])
	for i := 0; i < n; i++ {
		m.halfedges[hs[i]].next = hs[(i+1)%n]
		m.halfedges[hs[i]].face = f
	}
	for _, v := range vs {
		m.linkBoundary(v)
	}
	return
}

/*
linkBoundary sets the next pointer of every boundary halfedge entering v. The partner is found by rotating
through the fan that follows the open halfedge until the fan's outgoing boundary halfedge is reached.
*/
func (m *SurfaceMesh) linkBoundary(v Vertex) {
	var (
		out = m.outgoing[v]
	)
	for _, h := range out {
		in := h ^ 1
		if !m.IsBoundary(in) {
			continue
		}
		hh := h
		for i := 0; i <= len(out) && !m.IsBoundary(hh); i++ {
			prev := m.PrevHalfedge(hh)
			if !prev.IsValid() {
				break
			}
			hh = prev ^ 1
		}
		if m.IsBoundary(hh) {
			m.halfedges[in].next = hh
		}
	}
}

/*
InsertEdge connects ToVertex(h0) and ToVertex(h1), which must lie on the same face, splitting that face in
two. The face of h0 keeps the part starting with the new halfedge, a new face receives the rest. The new
halfedge from ToVertex(h0) to ToVertex(h1) is returned.
*/
func (m *SurfaceMesh) InsertEdge(h0, h1 Halfedge) (h Halfedge, err error) {
	if !h0.IsValid() || !h1.IsValid() || int(h0) >= len(m.halfedges) || int(h1) >= len(m.halfedges) {
		return InvalidHalfedge, errors.Wrapf(ErrInvalidHandle, "halfedges %d, %d", h0, h1)
	}
	var (
		f0 = m.halfedges[h0].face
		v0 = m.halfedges[h0].to
		v1 = m.halfedges[h1].to
	)
	if !f0.IsValid() || f0 != m.halfedges[h1].face {
		return InvalidHalfedge, errors.Wrapf(ErrFaceMismatch, "halfedges %d, %d", h0, h1)
	}
	if v0 == v1 {
		return InvalidHalfedge, errors.Wrapf(ErrDegenerateFace, "edge would connect vertex %d to itself", v0)
	}
	if m.FindHalfedge(v0, v1).IsValid() {
		return InvalidHalfedge, errors.Wrapf(ErrComplexEdge, "edge %d-%d exists", v0, v1)
	}
	var (
		h2 = m.halfedges[h0].next
		h3 = m.halfedges[h1].next
		h4 = m.newEdge(v0, v1)
		h5 = h4 ^ 1
		f1 = Face(len(m.faces))
	)
	m.faces = append(m.faces, h1)
	m.faces[f0] = h0

	m.halfedges[h0].next = h4
	m.halfedges[h4].next = h3
	m.halfedges[h4].face = f0

	m.halfedges[h1].next = h5
	m.halfedges[h5].next = h2
	hh := h2
	for {
		m.halfedges[hh].face = f1
		hh = m.halfedges[hh].next
		if hh == h2 {
			break
		}
	}
	return h4, nil
}
