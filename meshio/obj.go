package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notargets/meshtri/surfacemesh"
)

/*
ReadOBJ reads the vertices and polygonal faces of a Wavefront OBJ stream. Face corners may be written as
v, v/t, v//n or v/t/n; only the position index is used. Negative indices count back from the latest vertex.
Normals, texture coordinates, groups and materials are ignored.
*/
func ReadOBJ(r io.Reader) (*surfacemesh.SurfaceMesh, error) {
	var (
		scanner = bufio.NewScanner(r)
		points  [][3]float64
		faces   [][]int
		lineNum int
	)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		ident, val := fields[0], fields[1:]
		switch ident {
		case "v":
			if len(val) < 3 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates, have %d", lineNum, len(val))
			}
			var p [3]float64
			for i := 0; i < 3; i++ {
				var err error
				if p[i], err = strconv.ParseFloat(val[i], 64); err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
			}
			points = append(points, p)
		case "f":
			if len(val) < 3 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners, have %d", lineNum, len(val))
			}
			face := make([]int, len(val))
			for i, s := range val {
				idx := strings.Split(s, "/")
				pos, err := strconv.Atoi(idx[0])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				switch {
				case pos > 0:
					face[i] = pos - 1
				case pos < 0:
					face[i] = len(points) + pos
				default:
					return nil, fmt.Errorf("line %d: vertex index 0 is not valid", lineNum)
				}
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return buildMesh(points, faces)
}

// WriteOBJ writes vertex positions and faces, indices are 1-based
func WriteOBJ(w io.Writer, m *surfacemesh.SurfaceMesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d faces\n", m.NVertices(), m.NFaces())
	for v := 0; v < m.NVertices(); v++ {
		p := m.Position(surfacemesh.Vertex(v))
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	for _, f := range m.Faces() {
		bw.WriteString("f")
		for _, v := range m.FaceVertices(f) {
			fmt.Fprintf(bw, " %d", int(v)+1)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func formatFloat(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
