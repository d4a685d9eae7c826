package meshio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshtri/surfacemesh"
)

// ReadMeshFile reads a surface mesh file based on extension
func ReadMeshFile(filename string) (*surfacemesh.SurfaceMesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch ext {
	case ".obj":
		return ReadOBJ(file)
	case ".su2":
		return ReadSU2(file)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// WriteMeshFile writes the mesh in OBJ format, the only output format supported
func WriteMeshFile(filename string, m *surfacemesh.SurfaceMesh) (err error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".obj" {
		return fmt.Errorf("unsupported output mesh format: %s", ext)
	}
	var file *os.File
	if file, err = os.Create(filename); err != nil {
		return
	}
	if err = WriteOBJ(file, m); err != nil {
		file.Close()
		return
	}
	return file.Close()
}

// buildMesh adds all points and then all faces, reporting the first face the mesh rejects
func buildMesh(points [][3]float64, faces [][]int) (*surfacemesh.SurfaceMesh, error) {
	m := surfacemesh.NewSurfaceMesh()
	for _, p := range points {
		m.AddVertex(r3.Vec{X: p[0], Y: p[1], Z: p[2]})
	}
	for i, f := range faces {
		vs := make([]surfacemesh.Vertex, len(f))
		for j, v := range f {
			if v < 0 || v >= len(points) {
				return nil, fmt.Errorf("face %d references vertex %d, have %d vertices", i, v, len(points))
			}
			vs[j] = surfacemesh.Vertex(v)
		}
		if _, err := m.AddFace(vs...); err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
	}
	return m, nil
}
