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
ReadSU2 reads the surface elements of an SU2 native format file. For NDIME=2 the faces are the triangles and quads
of NELEM. For NDIME=3 NELEM normally holds volume elements, so the triangles and quads of the MARKER_ELEMS blocks
are used, falling back to surface elements in NELEM when no marker carries any.
*/
func ReadSU2(r io.Reader) (*surfacemesh.SurfaceMesh, error) {
	var (
		scanner     = bufio.NewScanner(r)
		ndime       int
		points      [][3]float64
		faces       [][]int
		markerFaces [][]int
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments
		if strings.HasPrefix(line, "%") || line == "" {
			continue
		}

		if strings.HasPrefix(line, "NDIME=") {
			fmt.Sscanf(line, "NDIME=%d", &ndime)
			if ndime != 2 && ndime != 3 {
				return nil, fmt.Errorf("only 2D and 3D meshes are supported, got NDIME=%d", ndime)
			}

		} else if strings.HasPrefix(line, "NELEM=") {
			var nelem int
			fmt.Sscanf(line, "NELEM=%d", &nelem)
			faces = make([][]int, 0, nelem)

			for i := 0; i < nelem; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected end of file reading element %d of %d", i, nelem)
				}
				verts, err := parseSurfaceElementSU2(scanner.Text())
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
				if verts != nil {
					faces = append(faces, verts)
				}
			}

		} else if strings.HasPrefix(line, "NPOIN=") {
			var npoin int
			fmt.Sscanf(line, "NPOIN=%d", &npoin)
			if ndime == 0 {
				return nil, fmt.Errorf("NPOIN found before NDIME")
			}
			points = make([][3]float64, npoin)

			for i := 0; i < npoin; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected end of file reading point %d of %d", i, npoin)
				}
				fields := strings.Fields(scanner.Text())
				if len(fields) < ndime {
					return nil, fmt.Errorf("point %d has %d coordinates, expected %d", i, len(fields), ndime)
				}
				var coords [3]float64
				for j := 0; j < ndime; j++ {
					var err error
					if coords[j], err = strconv.ParseFloat(fields[j], 64); err != nil {
						return nil, fmt.Errorf("point %d: %w", i, err)
					}
				}

				// Point ID is the optional last field
				ptID := i
				if len(fields) > ndime {
					if id, err := strconv.Atoi(fields[len(fields)-1]); err == nil && id >= 0 && id < npoin {
						ptID = id
					}
				}
				points[ptID] = coords
			}

		} else if strings.HasPrefix(line, "NMARK=") {
			var nmark int
			fmt.Sscanf(line, "NMARK=%d", &nmark)

			for i := 0; i < nmark; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected end of file reading marker %d of %d", i, nmark)
				}
				markerLine := strings.TrimSpace(scanner.Text())
				if !strings.HasPrefix(markerLine, "MARKER_TAG=") {
					return nil, fmt.Errorf("marker %d: expected MARKER_TAG=, got %q", i, markerLine)
				}
				tagName := strings.TrimSpace(strings.TrimPrefix(markerLine, "MARKER_TAG="))

				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected end of file reading marker %s", tagName)
				}
				var nMarkerElems int
				fmt.Sscanf(strings.TrimSpace(scanner.Text()), "MARKER_ELEMS=%d", &nMarkerElems)

				for j := 0; j < nMarkerElems; j++ {
					if !scanner.Scan() {
						return nil, fmt.Errorf("unexpected end of file reading marker %s element %d", tagName, j)
					}
					// 2D markers are boundary lines, only 3D markers carry surface polygons
					if ndime != 3 {
						continue
					}
					verts, err := parseSurfaceElementSU2(scanner.Text())
					if err != nil {
						return nil, fmt.Errorf("marker %s element %d: %w", tagName, j, err)
					}
					if verts != nil {
						markerFaces = append(markerFaces, verts)
					}
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if ndime == 3 && len(markerFaces) != 0 {
		faces = markerFaces
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("no surface elements (triangles or quads) found")
	}
	return buildMesh(points, faces)
}

// parseSurfaceElementSU2 returns the node list of a triangle or quad element line, nil for other element types
func parseSurfaceElementSU2(line string) (verts []int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}
	su2Type, _ := strconv.Atoi(fields[0])
	numNodes := getNumNodesSU2(su2Type)
	if numNodes == 0 {
		// Lines and volume elements carry no surface polygon
		return
	}
	if len(fields) < numNodes+1 {
		return nil, fmt.Errorf("has %d nodes, expected %d", len(fields)-1, numNodes)
	}
	verts = make([]int, numNodes)
	for j := 0; j < numNodes; j++ {
		if verts[j], err = strconv.Atoi(fields[1+j]); err != nil {
			return nil, err
		}
	}
	return
}

// getNumNodesSU2 returns the number of nodes for an SU2 surface element type, 0 for everything else
func getNumNodesSU2(su2Type int) int {
	switch su2Type {
	case 5:
		return 3 // Triangle
	case 9:
		return 4 // Quad
	default:
		return 0
	}
}
