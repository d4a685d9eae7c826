package triangulation

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshtri/surfacemesh"
)

var (
	ErrNonManifold      = errors.New("non-manifold polygon")
	ErrUnreachableSplit = errors.New("split corners are not reachable on a common face")
	ErrCorruptFace      = errors.New("face boundary does not close")
	ErrInvalidFace      = errors.New("no such face")
)

// Mesh is the part of a halfedge mesh the triangulator reads and splits
type Mesh interface {
	NFaces() int
	NHalfedges() int
	Halfedge(f surfacemesh.Face) surfacemesh.Halfedge
	NextHalfedge(h surfacemesh.Halfedge) surfacemesh.Halfedge
	OppositeHalfedge(h surfacemesh.Halfedge) surfacemesh.Halfedge
	ToVertex(h surfacemesh.Halfedge) surfacemesh.Vertex
	IsBoundary(h surfacemesh.Halfedge) bool
	IsManifold(v surfacemesh.Vertex) bool
	Position(v surfacemesh.Vertex) r3.Vec
	FindHalfedge(a, b surfacemesh.Vertex) surfacemesh.Halfedge
	InsertEdge(h0, h1 surfacemesh.Halfedge) (surfacemesh.Halfedge, error)
}

type Triangulator struct {
	mesh   Mesh
	policy EdgePolicy
}

type Option func(*Triangulator)

func WithEdgePolicy(p EdgePolicy) Option {
	return func(t *Triangulator) { t.policy = p }
}

func NewTriangulator(mesh Mesh, opts ...Option) (t *Triangulator) {
	t = &Triangulator{
		mesh:   mesh,
		policy: RejectClosedTriangles,
	}
	for _, opt := range opts {
		opt(t)
	}
	return
}

func (t *Triangulator) EdgePolicy() EdgePolicy { return t.policy }

// Report counts the outcome of a whole mesh pass
type Report struct {
	Objective     Objective
	FacesVisited  int
	FacesSplit    int // Faces that received at least one diagonal
	EdgesInserted int // Each inserted diagonal adds one face
	NonManifold   int
	Failed        int // Faces left partially split by an unreachable diagonal
}

func (r Report) String() string {
	return fmt.Sprintf("objective=%s visited=%d split=%d diagonals=%d non-manifold=%d failed=%d",
		r.Objective, r.FacesVisited, r.FacesSplit, r.EdgesInserted, r.NonManifold, r.Failed)
}

/*
Triangulate splits every face present at the start of the call. Faces created by the splits are triangles and
are not revisited. A failed face is reported and skipped; processing continues with the next face.
*/
func (t *Triangulator) Triangulate(o Objective) (rpt Report) {
	var (
		faces = make([]surfacemesh.Face, t.mesh.NFaces())
	)
	for i := range faces {
		faces[i] = surfacemesh.Face(i)
	}
	return t.TriangulateFaces(faces, o)
}

// TriangulateFaces processes the listed faces in order with the same failure handling as Triangulate
func (t *Triangulator) TriangulateFaces(faces []surfacemesh.Face, o Objective) (rpt Report) {
	rpt.Objective = o
	for _, f := range faces {
		rpt.FacesVisited++
		inserted, err := t.triangulateFace(f, o)
		rpt.EdgesInserted += inserted
		if inserted > 0 {
			rpt.FacesSplit++
		}
		switch {
		case err == nil:
		case errors.Is(err, ErrNonManifold):
			rpt.NonManifold++
		default:
			rpt.Failed++
		}
	}
	klog.Infof("[Triangulate] %s", rpt)
	return
}

// TriangulateFace splits one face into triangles, faces with three or fewer corners are left alone
func (t *Triangulator) TriangulateFace(f surfacemesh.Face, o Objective) (err error) {
	_, err = t.triangulateFace(f, o)
	return
}

func (t *Triangulator) triangulateFace(f surfacemesh.Face, o Objective) (inserted int, err error) {
	var (
		poly *polygon
	)
	if !f.IsValid() || int(f) >= t.mesh.NFaces() {
		err = errors.Wrapf(ErrInvalidFace, "face %d, mesh has %d faces", f, t.mesh.NFaces())
		klog.Warningf("[Triangulate] %v", err)
		return
	}
	if poly, err = t.collectPolygon(f); err != nil {
		klog.Warningf("[Triangulate] face %d skipped: %v", f, err)
		return
	}
	if poly.size() <= 3 {
		return
	}
	poly.objective = o
	splits := t.solve(poly)
	if inserted, err = t.materialize(poly, splits); err != nil {
		klog.Errorf("[Triangulate] face %d: %v", f, err)
	}
	return
}
