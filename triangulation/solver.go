package triangulation

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const noSplit = -1

/*
splitTable holds the interval DP result for one polygon. For i < j, weight(i,j) is the optimal cost of the
sub-polygon of corners i..j closed by the chord (i,j), and split(i,j) the corner m that forms triangle (i,m,j).
Adjacent pairs carry weight 0 and noSplit.
*/
type splitTable struct {
	n      int
	weight *mat.Dense
	index  []int
}

func newSplitTable(n int) (st *splitTable) {
	st = &splitTable{
		n:      n,
		weight: mat.NewDense(n, n, nil),
		index:  make([]int, n*n),
	}
	for i := range st.index {
		st.index[i] = noSplit
	}
	return
}

func (st *splitTable) split(i, j int) int { return st.index[i*st.n+j] }

func (st *splitTable) cost(i, j int) float64 { return st.weight.At(i, j) }

func (st *splitTable) set(i, j, m int, w float64) {
	st.weight.Set(i, j, w)
	st.index[i*st.n+j] = m
}

/*
solve fills the table by increasing chain length. Ties keep the lowest split corner. When every candidate of a
chain is refused (+Inf) the first corner is recorded anyway, so the table always describes a full triangulation.
*/
func (t *Triangulator) solve(poly *polygon) (st *splitTable) {
	var (
		n = poly.size()
	)
	st = newSplitTable(n)
	for i := 0; i < n-1; i++ {
		st.set(i, i+1, noSplit, 0)
	}
	for l := 2; l < n; l++ {
		for i := 0; i < n-l; i++ {
			var (
				k    = i + l
				wMin = math.Inf(1)
				mMin = noSplit
			)
			for m := i + 1; m < k; m++ {
				w := poly.objective.combine(st.cost(i, m), t.triangleWeight(poly, i, m, k), st.cost(m, k))
				if w < wMin || mMin == noSplit {
					wMin, mMin = w, m
				}
			}
			st.set(i, k, mMin, wMin)
		}
	}
	return
}
