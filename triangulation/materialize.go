package triangulation

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
)

type cornerRange [2]int

/*
materialize replays the split table top down with an explicit work stack, inserting the two diagonals of each
chosen triangle. Diagonals that already exist are skipped. It stops at the first unreachable pair, so the face
may be left partially split.
*/
func (t *Triangulator) materialize(poly *polygon, st *splitTable) (inserted int, err error) {
	var (
		todo = arraystack.New()
	)
	todo.Push(cornerRange{0, poly.size() - 1})
	for !todo.Empty() {
		val, _ := todo.Pop()
		var (
			r          = val.(cornerRange)
			start, end = r[0], r[1]
		)
		if end-start < 2 {
			continue
		}
		split := st.split(start, end)
		if split == noSplit {
			return inserted, errors.Wrapf(ErrUnreachableSplit, "face %d, no split for corners %d-%d",
				poly.face, start, end)
		}
		for _, pair := range [2]cornerRange{{start, split}, {split, end}} {
			var ok bool
			if ok, err = t.insertEdge(poly, pair[0], pair[1]); err != nil {
				return
			}
			if ok {
				inserted++
			}
		}
		todo.Push(cornerRange{start, split})
		todo.Push(cornerRange{split, end})
	}
	return
}

/*
insertEdge connects corners i and j. It is a no-op when the edge exists, which includes polygon edges and
diagonals shared with an earlier split. Otherwise the face currently holding corner i's entering halfedge is
searched for corner j, then the reverse, and that face is split.
*/
func (t *Triangulator) insertEdge(poly *polygon, i, j int) (inserted bool, err error) {
	var (
		m      = t.mesh
		c0, c1 = poly.corners[i], poly.corners[j]
	)
	if m.FindHalfedge(c0.v, c1.v).IsValid() {
		return
	}
	for _, pc := range [2][2]corner{{c0, c1}, {c1, c0}} {
		var (
			from, to = pc[0], pc[1]
			h        = from.h
			limit    = m.NHalfedges()
		)
		for step := 0; step < limit; step++ {
			h = m.NextHalfedge(h)
			if h == from.h || !h.IsValid() {
				break
			}
			if m.ToVertex(h) == to.v {
				if _, err = m.InsertEdge(from.h, h); err != nil {
					return
				}
				return true, nil
			}
		}
	}
	return false, errors.Wrapf(ErrUnreachableSplit, "face %d, corners %d (vertex %d) and %d (vertex %d)",
		poly.face, i, c0.v, j, c1.v)
}
