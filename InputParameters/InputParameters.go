package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/meshtri/triangulation"
)

// Parameters obtained from the YAML input file
type TriangulationParameters struct {
	Title                string `yaml:"Title"`
	InputFile            string `yaml:"InputFile"`
	OutputFile           string `yaml:"OutputFile"`
	Objective            string `yaml:"Objective"`            // MinArea or MaxAngle
	RejectInteriorChords bool   `yaml:"RejectInteriorChords"` // Stricter edge policy
	Faces                []int  `yaml:"Faces"`                // Restrict to these faces, all faces when empty
}

func NewTriangulationParameters() *TriangulationParameters {
	return &TriangulationParameters{
		Objective: triangulation.MinArea.String(),
	}
}

func (ip *TriangulationParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *TriangulationParameters) GetObjective() (triangulation.Objective, error) {
	return triangulation.NewObjective(ip.Objective)
}

func (ip *TriangulationParameters) GetEdgePolicy() triangulation.EdgePolicy {
	if ip.RejectInteriorChords {
		return triangulation.RejectInteriorChords
	}
	return triangulation.RejectClosedTriangles
}

func (ip *TriangulationParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Input File\n", ip.InputFile)
	fmt.Printf("[%s]\t\t= Output File\n", ip.OutputFile)
	fmt.Printf("[%s]\t\t= Objective\n", ip.Objective)
	fmt.Printf("[%s]\t= Edge Policy\n", ip.GetEdgePolicy())
	if len(ip.Faces) != 0 {
		fmt.Printf("Faces = %v\n", ip.Faces)
	}
}
