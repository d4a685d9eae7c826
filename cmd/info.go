package cmd

import (
	"github.com/spf13/cobra"

	"github.com/notargets/meshtri/meshio"
	"github.com/notargets/meshtri/quality"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print face and angle statistics for a mesh",
	RunE: func(cmd *cobra.Command, args []string) error {
		gridFile, _ := cmd.Flags().GetString("gridFile")
		m, err := meshio.ReadMeshFile(gridFile)
		if err != nil {
			return err
		}
		quality.Compute(m).Print()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	InfoCmd.Flags().StringP("gridFile", "F", "", "Mesh file to read in OBJ (.obj) or SU2 (.su2) format")
	InfoCmd.MarkFlagRequired("gridFile")
}
