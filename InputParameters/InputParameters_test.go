package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshtri/triangulation"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: Test Case
InputFile: suzanne.obj
OutputFile: suzanne-tri.obj
Objective: MaxAngle # Can be MinArea or MaxAngle
RejectInteriorChords: true
Faces: [0, 4, 7]
`)
	ip := NewTriangulationParameters()
	require.NoError(t, ip.Parse(fileInput))
	assert.Equal(t, "Test Case", ip.Title)
	assert.Equal(t, "suzanne.obj", ip.InputFile)
	assert.Equal(t, []int{0, 4, 7}, ip.Faces)
	o, err := ip.GetObjective()
	require.NoError(t, err)
	assert.Equal(t, triangulation.MaxAngle, o)
	assert.Equal(t, triangulation.RejectInteriorChords, ip.GetEdgePolicy())
	ip.Print()

	// Defaults survive a file that does not set them
	ip = NewTriangulationParameters()
	require.NoError(t, ip.Parse([]byte("Title: Defaults\n")))
	o, err = ip.GetObjective()
	require.NoError(t, err)
	assert.Equal(t, triangulation.MinArea, o)
	assert.Equal(t, triangulation.RejectClosedTriangles, ip.GetEdgePolicy())

	ip = NewTriangulationParameters()
	require.NoError(t, ip.Parse([]byte("Objective: Smallest\n")))
	_, err = ip.GetObjective()
	assert.Error(t, err)
}
