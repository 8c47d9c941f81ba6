package cdt

import (
	"github.com/quadedge/cdt/internal/predicates"
	"github.com/quadedge/cdt/internal/quadedge"
)

// insertPoint implements section 4.4. It mirrors
// tjim-manifold/delaunay.InsertSite's locate/split/restore shape,
// generalized to the handle-based store, to exact-sign Classify instead
// of an epsilon-windowed OnEdge, and to the rank-based in-circle
// tie-break of section 4.3 during the restoration walk.
func (t *Triangulation) insertPoint(p Point) quadedge.VertexHandle {
	x := toPredPoint(p)
	e := t.locate(x)
	org, dest := t.orgPoint(e), t.destPoint(e)

	if samePoint(x, org) {
		return t.store.Origin(e)
	}
	if samePoint(x, dest) {
		return t.store.Dest(e)
	}

	if predicates.Collinear(org, dest, x) {
		if t.store.Constrained(e) {
			fail(InputOnConstrainedEdge, "point (%g, %g) lies on constrained edge (%g, %g)-(%g, %g)",
				p.X, p.Y, org.X, org.Y, dest.X, dest.Y)
		}
		e = t.store.OriginPrev(e)
		t.store.DeleteEdge(t.store.OriginNext(e))
	}

	v := t.store.AddVertex(p.X, p.Y)
	base := t.store.NewEdge()
	t.store.SetOrigin(base, t.store.Origin(e))
	t.store.SetDest(base, v)
	t.store.Splice(base, e)

	startingEdge := base
	for {
		base = t.store.Connect(e, t.store.Sym(base))
		e = t.store.OriginPrev(base)
		if quadedge.SameEdge(t.store.LeftNext(e), startingEdge) {
			break
		}
	}

	for {
		tDart := t.store.OriginPrev(e)
		apex := t.store.Dest(tDart)
		apexPoint := t.point(apex)
		swappable := !t.store.Constrained(e) && t.rightFaceBounded(e) && t.rightOf(apexPoint, e)
		if swappable && t.inCircleTest(t.store.Origin(e), apex, t.store.Dest(e), v) {
			t.store.Swap(e)
			e = t.store.OriginPrev(e)
		} else if quadedge.SameEdge(t.store.OriginNext(e), startingEdge) {
			return v
		} else {
			e = t.store.LeftPrev(t.store.OriginNext(e))
		}
	}
}

// rightFaceBounded reports whether the face to the right of e is a
// bounded triangle rather than the single unbounded face. Computed
// directly from the current dart topology (via the same shoelace test
// rebuildFaces uses) rather than a cached Face field, since Face records
// are only ever refreshed at the end of a public operation and this
// check runs mid-algorithm.
func (t *Triangulation) rightFaceBounded(e quadedge.DartHandle) bool {
	return t.isBoundedFaceCycle(t.store.Sym(e))
}
