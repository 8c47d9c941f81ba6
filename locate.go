package cdt

import (
	"github.com/quadedge/cdt/internal/predicates"
	"github.com/quadedge/cdt/internal/quadedge"
)

// locate walks the triangulation from the store's starting dart per
// section 4.4 step 1, the same four-way branch as
// tjim-manifold/delaunay.Locate generalized to the handle-based store
// and to exact predicates in place of the teacher's plain floating-point
// Ccw.
func (t *Triangulation) locate(x predicates.Point) quadedge.DartHandle {
	e := t.store.Start
	for {
		org, dest := t.orgPoint(e), t.destPoint(e)
		switch {
		case samePoint(x, org) || samePoint(x, dest):
			return e
		case t.rightOf(x, e):
			e = t.store.Sym(e)
		case !t.rightOf(x, t.store.OriginNext(e)):
			e = t.store.OriginNext(e)
		case !t.rightOf(x, t.store.DestPrev(e)):
			e = t.store.DestPrev(e)
		default:
			return e
		}
	}
}
