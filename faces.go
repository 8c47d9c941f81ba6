package cdt

import (
	"github.com/quadedge/cdt/internal/predicates"
	"github.com/quadedge/cdt/internal/quadedge"
)

// rebuildFaces recomputes the store's face partition from scratch by
// walking each live primal dart's LeftNext cycle (dual darts carry no
// origin vertex and get no face). It is cheaper and safer than
// threading face-merge bookkeeping through every Splice/Swap/DeleteEdge
// call site, and is run once at the end of every public operation,
// before the invariant "every primal dart has a non-null Face pointer"
// must hold again.
func (t *Triangulation) rebuildFaces() {
	s := t.store
	s.ResetFaces()
	n := s.DartCount()
	for i := 0; i < n; i++ {
		d := quadedge.DartHandle(i)
		if !s.QuadEdgeAlive(d) || s.Origin(d) == quadedge.NilVertex {
			continue
		}
		if s.Face(d) != quadedge.NilFace {
			continue
		}
		f := s.AddFace(t.isBoundedFaceCycle(d))
		cur := d
		for {
			s.SetFace(cur, f)
			cur = s.LeftNext(cur)
			if quadedge.SameEdge(cur, d) {
				break
			}
		}
	}
}

// isBoundedFaceCycle sums predicates.Orient2D over d's LeftNext cycle as a
// triangle fan from d's own origin: a bounded face's boundary is traversed
// counter-clockwise (positive signed area); the single unbounded face's
// boundary — the convex hull — is traversed the other way as seen from
// outside it. Fanning from a point on the cycle rather than an arbitrary
// reference point means the first and last terms are degenerate (zero) and
// every other term is an exact orientation of three points actually on the
// cycle, matching the sign-exactness every other geometric decision in this
// package gets from predicates.Orient2D/Left.
func (t *Triangulation) isBoundedFaceCycle(d quadedge.DartHandle) bool {
	apex := t.orgPoint(d)
	area := 0.0
	cur := d
	for {
		a := t.orgPoint(cur)
		b := t.destPoint(cur)
		area += predicates.Orient2D(apex, a, b)
		cur = t.store.LeftNext(cur)
		if quadedge.SameEdge(cur, d) {
			break
		}
	}
	return area > 0
}
