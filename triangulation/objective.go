package triangulation

import (
	"fmt"
	"strings"
)

// Objective selects both the triangle cost and how sub-triangulation costs combine
type Objective uint8

const (
	MinArea  Objective = iota // Sum of squared triangle areas
	MaxAngle                  // Worst (largest) corner cosine, maximizes the smallest angle
)

var (
	ObjectiveNames = map[string]Objective{
		"minarea":  MinArea,
		"area":     MinArea,
		"maxangle": MaxAngle,
		"angle":    MaxAngle,
	}
	ObjectivePrintNames = []string{"MinArea", "MaxAngle"}
)

// NewObjective accepts "MinArea", "min-area", "MIN_AREA" and the like
func NewObjective(label string) (o Objective, err error) {
	var (
		ok  bool
		key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(label))
	)
	if o, ok = ObjectiveNames[key]; !ok {
		err = fmt.Errorf("unable to use objective named %s", label)
	}
	return
}

func (o Objective) String() string {
	if int(o) < len(ObjectivePrintNames) {
		return ObjectivePrintNames[o]
	}
	return fmt.Sprintf("Objective(%d)", o)
}

// combine merges the cost of triangle (i,m,k) with the optimal costs of the two sub-chains it leaves behind
func (o Objective) combine(left, tri, right float64) float64 {
	switch o {
	case MaxAngle:
		if left < tri {
			left = tri
		}
		if left < right {
			left = right
		}
		return left
	default:
		return left + tri + right
	}
}

/*
EdgePolicy decides which candidate triangles the weight function refuses outright.

RejectClosedTriangles refuses a triangle whose three edges all exist already. RejectInteriorChords additionally
refuses a triangle that would reuse an existing interior edge as one of its chords, which is needed for some
closed meshes where two faces share more than one vertex pair.
*/
type EdgePolicy uint8

const (
	RejectClosedTriangles EdgePolicy = iota
	RejectInteriorChords
)

var EdgePolicyPrintNames = []string{"RejectClosedTriangles", "RejectInteriorChords"}

func (p EdgePolicy) String() string {
	if int(p) < len(EdgePolicyPrintNames) {
		return EdgePolicyPrintNames[p]
	}
	return fmt.Sprintf("EdgePolicy(%d)", p)
}
