package meshio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshtri/surfacemesh"
)

// Helper function to create temporary test files
func createTempMeshFile(t *testing.T, name, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

const twoFaceOBJ = `# quad and triangle sharing edge 2-3
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 2 0.5 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1 4/1/1
f 2//1 5//1 3//1
`

func TestReadOBJ(t *testing.T) {
	m, err := ReadOBJ(strings.NewReader(twoFaceOBJ))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 5, m.NVertices())
	assert.Equal(t, 2, m.NFaces())
	assert.Equal(t, 6, m.NEdges())
	assert.Equal(t, []surfacemesh.Vertex{0, 1, 2, 3}, m.FaceVertices(0))
	assert.Equal(t, []surfacemesh.Vertex{1, 4, 2}, m.FaceVertices(1))
	assert.Equal(t, 2., m.Position(4).X)
	assert.Equal(t, 0.5, m.Position(4).Y)
	assert.False(t, m.IsBoundaryEdge(m.FindEdge(1, 2)))
}

func TestReadOBJNegativeIndices(t *testing.T) {
	m, err := ReadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"))
	require.NoError(t, err)
	assert.Equal(t, []surfacemesh.Vertex{0, 1, 2}, m.FaceVertices(0))
}

func TestReadOBJErrors(t *testing.T) {
	_, err := ReadOBJ(strings.NewReader("v 0 0\n"))
	assert.Error(t, err)
	_, err = ReadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 7\n"))
	assert.Error(t, err)
	_, err = ReadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"))
	assert.Error(t, err)
	_, err = ReadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nf 1 2 3\nf 1 2 4\n"))
	assert.True(t, errors.Is(err, surfacemesh.ErrComplexEdge))
}

func TestWriteOBJRoundTrip(t *testing.T) {
	m, err := ReadOBJ(strings.NewReader(twoFaceOBJ))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, m))
	assert.Contains(t, buf.String(), "f 1 2 3 4\n")
	assert.Contains(t, buf.String(), "v 2 0.5 0\n")

	m2, err := ReadOBJ(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.NVertices(), m2.NVertices())
	assert.Equal(t, m.NFaces(), m2.NFaces())
	for _, f := range m.Faces() {
		assert.Equal(t, m.FaceVertices(f), m2.FaceVertices(f))
	}
}

func TestReadSU2(t *testing.T) {
	content := `% 2D strip
NDIME= 2
NELEM= 3
9 0 1 4 3 0
5 1 2 4 1
3 2 4 2
NPOIN= 5
0.0 0.0 0
1.0 0.0 1
2.0 0.0 2
0.0 1.0 3
1.0 1.0 4
NMARK= 1
MARKER_TAG= wall
MARKER_ELEMS= 1
3 0 1
`
	m, err := ReadSU2(strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 5, m.NVertices())
	assert.Equal(t, 2, m.NFaces())
	assert.Equal(t, 4, m.Valence(0))
	assert.Equal(t, 3, m.Valence(1))
	assert.Equal(t, 1., m.Position(3).Y)
	assert.Equal(t, 0., m.Position(3).Z)

	_, err = ReadSU2(strings.NewReader("NDIME= 4\n"))
	assert.Error(t, err)
	_, err = ReadSU2(strings.NewReader("NDIME= 2\nNELEM= 1\n3 0 1 0\nNPOIN= 2\n0 0\n1 0\n"))
	assert.Error(t, err)
	_, err = ReadSU2(strings.NewReader("NDIME= 2\nNELEM= 2\n5 0 1 2 0\n"))
	assert.Error(t, err)
}

func TestReadSU2Markers(t *testing.T) {
	{ // Tet volume mesh, the surface comes from the markers
		content := `% unit tet
NDIME= 3
NELEM= 1
10 0 1 2 3 0
NPOIN= 4
0.0 0.0 0.0 0
1.0 0.0 0.0 1
0.0 1.0 0.0 2
0.0 0.0 1.0 3
NMARK= 2
MARKER_TAG= wall
MARKER_ELEMS= 3
5 0 2 1
5 0 1 3
5 0 3 2
MARKER_TAG= top
MARKER_ELEMS= 1
5 1 2 3
`
		m, err := ReadSU2(strings.NewReader(content))
		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, 4, m.NVertices())
		assert.Equal(t, 4, m.NFaces())
		assert.Equal(t, 6, m.NEdges())
		for v := 0; v < 4; v++ {
			assert.Equal(t, 3, m.Valence(surfacemesh.Face(v)))
		}
		assert.Equal(t, 1., m.Position(3).Z)
	}
	{ // Volume elements only, nothing to triangulate
		content := `NDIME= 3
NELEM= 1
10 0 1 2 3 0
NPOIN= 4
0.0 0.0 0.0
1.0 0.0 0.0
0.0 1.0 0.0
0.0 0.0 1.0
NMARK= 1
MARKER_TAG= wall
MARKER_ELEMS= 0
`
		_, err := ReadSU2(strings.NewReader(content))
		assert.Error(t, err)
	}
	{ // Short marker element
		content := "NDIME= 3\nNPOIN= 3\n0 0 0\n1 0 0\n0 1 0\nNMARK= 1\nMARKER_TAG= w\nMARKER_ELEMS= 1\n5 0 1\n"
		_, err := ReadSU2(strings.NewReader(content))
		assert.Error(t, err)
	}
}

func TestReadWriteMeshFile(t *testing.T) {
	objFile := createTempMeshFile(t, "two.obj", twoFaceOBJ)
	m, err := ReadMeshFile(objFile)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NFaces())

	out := filepath.Join(t.TempDir(), "out.obj")
	require.NoError(t, WriteMeshFile(out, m))
	m2, err := ReadMeshFile(out)
	require.NoError(t, err)
	assert.Equal(t, m.NEdges(), m2.NEdges())

	assert.Error(t, WriteMeshFile(filepath.Join(t.TempDir(), "out.stl"), m))
	_, err = ReadMeshFile(createTempMeshFile(t, "mesh.neu", ""))
	assert.Error(t, err)
	_, err = ReadMeshFile(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
