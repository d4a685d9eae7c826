package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/meshtri/InputParameters"
	"github.com/notargets/meshtri/meshio"
	"github.com/notargets/meshtri/quality"
	"github.com/notargets/meshtri/surfacemesh"
	"github.com/notargets/meshtri/triangulation"
)

// TriangulateCmd represents the triangulate command
var TriangulateCmd = &cobra.Command{
	Use:   "triangulate",
	Short: "Split the polygonal faces of a mesh into optimal triangles",
	Long: `Reads a surface mesh (.obj, .su2), triangulates its faces and optionally writes the result as .obj

Parameters come from, in increasing priority: the config file, the input parameters file (-I), then flags.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.TriangulationParameters
		)
		if ip, err = processInput(cmd); err != nil {
			return
		}
		ip.Print()
		_, err = RunTriangulate(ip)
		return
	},
}

func init() {
	rootCmd.AddCommand(TriangulateCmd)
	TriangulateCmd.Flags().StringP("gridFile", "F", "", "Mesh file to read in OBJ (.obj) or SU2 (.su2) format")
	TriangulateCmd.Flags().StringP("outputFile", "o", "", "OBJ file to write the triangulated mesh to")
	TriangulateCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- Objective\n\t- RejectInteriorChords")
	TriangulateCmd.Flags().String("objective", triangulation.MinArea.String(), "objective: MinArea or MaxAngle")
	TriangulateCmd.Flags().Bool("strict", false, "also refuse triangles that reuse an existing interior edge as a chord")
	viper.BindPFlag("objective", TriangulateCmd.Flags().Lookup("objective"))
	viper.BindPFlag("strict", TriangulateCmd.Flags().Lookup("strict"))
}

func processInput(cmd *cobra.Command) (ip *InputParameters.TriangulationParameters, err error) {
	ip = InputParameters.NewTriangulationParameters()
	ip.Objective = viper.GetString("objective")
	ip.RejectInteriorChords = viper.GetBool("strict")

	var icFile string
	if icFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
		return
	}
	if len(icFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(icFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			return
		}
	}
	// Explicit flags win over the parameters file
	if cmd.Flags().Changed("objective") {
		ip.Objective, _ = cmd.Flags().GetString("objective")
	}
	if cmd.Flags().Changed("strict") {
		ip.RejectInteriorChords, _ = cmd.Flags().GetBool("strict")
	}
	if gf, _ := cmd.Flags().GetString("gridFile"); len(gf) != 0 {
		ip.InputFile = gf
	}
	if of, _ := cmd.Flags().GetString("outputFile"); len(of) != 0 {
		ip.OutputFile = of
	}
	if len(ip.InputFile) == 0 {
		exampleFile := `
########################################
Title: "Test Case"
InputFile: suzanne.obj
OutputFile: suzanne-tri.obj
Objective: MaxAngle # Can be "MinArea"
RejectInteriorChords: false
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		err = fmt.Errorf("must supply a mesh file (-F, --gridFile) or InputFile in the parameters file")
	}
	return
}

// RunTriangulate reads the mesh, triangulates the selected faces and writes the result when an output is set
func RunTriangulate(ip *InputParameters.TriangulationParameters) (rpt triangulation.Report, err error) {
	var (
		m *surfacemesh.SurfaceMesh
		o triangulation.Objective
	)
	if o, err = ip.GetObjective(); err != nil {
		return
	}
	if m, err = meshio.ReadMeshFile(ip.InputFile); err != nil {
		return
	}
	fmt.Println("Before:")
	quality.Compute(m).Print()

	tr := triangulation.NewTriangulator(m, triangulation.WithEdgePolicy(ip.GetEdgePolicy()))
	if len(ip.Faces) == 0 {
		rpt = tr.Triangulate(o)
	} else {
		faces := make([]surfacemesh.Face, len(ip.Faces))
		for i, f := range ip.Faces {
			faces[i] = surfacemesh.Face(f)
		}
		rpt = tr.TriangulateFaces(faces, o)
	}
	fmt.Printf("%s\n", rpt)
	fmt.Println("After:")
	quality.Compute(m).Print()

	if len(ip.OutputFile) != 0 {
		if err = meshio.WriteMeshFile(ip.OutputFile, m); err != nil {
			return
		}
		fmt.Printf("Wrote %s\n", ip.OutputFile)
	}
	return
}
