package quality

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/meshtri/surfacemesh"
	"github.com/notargets/meshtri/utils"
)

// Stats summarizes the faces of a surface mesh, angles are in degrees and cover triangles only
type Stats struct {
	Vertices, Edges, Faces int
	Triangles, Polygons    int
	Valences               map[int]int // Face valence to count
	TotalArea              float64
	MinAngle, MeanAngle    float64
	NonManifoldVertices    int
}

// Compute gathers statistics for the mesh in its current state
func Compute(m *surfacemesh.SurfaceMesh) (s Stats) {
	var (
		areas     []float64
		minAngles []float64
	)
	s.Vertices, s.Edges, s.Faces = m.NVertices(), m.NEdges(), m.NFaces()
	s.Valences = make(map[int]int)
	for _, f := range m.Faces() {
		verts := m.FaceVertices(f)
		pts := make([]r3.Vec, len(verts))
		for i, v := range verts {
			pts[i] = m.Position(v)
		}
		s.Valences[len(verts)]++
		if len(verts) == 3 {
			s.Triangles++
			areas = append(areas, utils.TriangleArea(pts[0], pts[1], pts[2]))
			minAngles = append(minAngles, utils.MinAngle(pts[0], pts[1], pts[2])*180/math.Pi)
		} else {
			s.Polygons++
			areas = append(areas, utils.PolygonArea(pts))
		}
	}
	for v := 0; v < m.NVertices(); v++ {
		if !m.IsManifold(surfacemesh.Vertex(v)) {
			s.NonManifoldVertices++
		}
	}
	if len(areas) != 0 {
		s.TotalArea = floats.Sum(areas)
	}
	if len(minAngles) != 0 {
		s.MinAngle = floats.Min(minAngles)
		s.MeanAngle = stat.Mean(minAngles, nil)
	}
	return
}

func (s Stats) Print() {
	fmt.Printf("%d\t\t\t= Vertices\n", s.Vertices)
	fmt.Printf("%d\t\t\t= Edges\n", s.Edges)
	fmt.Printf("%d\t\t\t= Faces (%d triangles, %d polygons)\n", s.Faces, s.Triangles, s.Polygons)
	fmt.Printf("%d\t\t\t= Non-manifold vertices\n", s.NonManifoldVertices)
	fmt.Printf("%12.6g\t\t= Total area\n", s.TotalArea)
	if s.Triangles != 0 {
		fmt.Printf("%8.3f\t\t= Smallest triangle angle (deg)\n", s.MinAngle)
		fmt.Printf("%8.3f\t\t= Mean of smallest triangle angles (deg)\n", s.MeanAngle)
	}
	keys := make([]int, 0, len(s.Valences))
	for k := range s.Valences {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, key := range keys {
		fmt.Printf("Valence[%d] = %d\n", key, s.Valences[key])
	}
}
