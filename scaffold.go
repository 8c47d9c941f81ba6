package cdt

import (
	"math"

	"github.com/quadedge/cdt/internal/predicates"
	"github.com/quadedge/cdt/internal/quadedge"
)

// buildScaffold constructs the enclosing triangle of section 4.3, with
// corners at (M, 0), (0, M), (-M, -M) where M = 3*max(|u|, |v|) over all
// input points. Its three corner handles are kept on the Triangulation
// (rather than re-derived from coordinates later) so scaffoldRank below
// is an identity check, not a fragile floating-point comparison against
// M.
func (t *Triangulation) buildScaffold(points []Point) {
	maxAbs := 0.0
	for _, p := range points {
		if a := math.Abs(p.X); a > maxAbs {
			maxAbs = a
		}
		if a := math.Abs(p.Y); a > maxAbs {
			maxAbs = a
		}
	}
	m := 3 * maxAbs
	if m == 0 {
		m = 3
	}
	t.store.M = m

	va := t.store.AddVertex(m, 0)
	vb := t.store.AddVertex(0, m)
	vc := t.store.AddVertex(-m, -m)
	t.scaffold = [3]quadedge.VertexHandle{va, vb, vc}

	ea := t.store.NewEdge()
	t.store.SetOrigin(ea, va)
	t.store.SetDest(ea, vb)

	eb := t.store.NewEdge()
	t.store.SetOrigin(eb, vb)
	t.store.SetDest(eb, vc)
	t.store.Splice(t.store.Sym(ea), eb)

	t.store.Connect(eb, ea)

	t.store.Start = ea
	t.rebuildFaces()
}

// scaffoldRank implements section 4.3's rank assignment: 0 for a real
// input point, 1-3 for the three scaffold corners (in construction
// order). Once the scaffold has been removed every vertex is rank 0.
func (t *Triangulation) scaffoldRank(v quadedge.VertexHandle) int {
	if t.scaffoldRemoved {
		return 0
	}
	for i, sv := range t.scaffold {
		if sv == v {
			return i + 1
		}
	}
	return 0
}

// inCircleTest implements the rank-based tie-break of section 4.3. a, b,
// c must be listed counter-clockwise; d is always a real input point.
func (t *Triangulation) inCircleTest(a, b, c, d quadedge.VertexHandle) bool {
	ra, rb, rc := t.scaffoldRank(a), t.scaffoldRank(b), t.scaffoldRank(c)
	pa, pb, pc, pd := t.point(a), t.point(b), t.point(c), t.point(d)

	if ra == 0 && rb == 0 && rc == 0 {
		return predicates.InCircle(pa, pb, pc, pd) > 0
	}
	if rb > ra && rb > rc {
		return false
	}
	return predicates.Left(pb, pc, pd) && !predicates.LeftOn(pb, pa, pd)
}

// removeScaffold implements section 4.6: peel each scaffold corner's
// fan of incident triangles down to nothing, three times, then mark the
// scaffold gone so later in-circle tests use plain exact signs.
func (t *Triangulation) removeScaffold() {
	for _, v := range t.scaffold {
		t.peelCorner(v)
	}
	t.scaffoldRemoved = true
	if t.store.Start == quadedge.NilDart {
		fail(InternalInconsistency, "no starting dart survived scaffold removal")
	}
	t.rebuildFaces()
}

// peelCorner repeatedly removes the boundary triangle incident to v by
// deleting one of v's own spokes — the triangle's interior merges into
// whatever face lies beyond that spoke, while the triangle's far edge
// (between v's two fan neighbors) survives untouched — until only one
// triangle remains at v, then drops both of its remaining spokes along
// with v itself.
func (t *Triangulation) peelCorner(v quadedge.VertexHandle) {
	for {
		e := t.store.VertexDart(v)
		if e == quadedge.NilDart {
			fail(InternalInconsistency, "scaffold corner lost its last dart before removal")
		}
		next := t.store.OriginNext(e)
		if quadedge.SameEdge(next, e) {
			fail(InternalInconsistency, "scaffold corner has only one incident dart")
		}
		if quadedge.SameEdge(t.store.OriginNext(next), e) {
			t.store.DeleteEdge(e)
			t.store.DeleteEdge(next)
			t.store.RemoveVertex(v)
			return
		}
		t.store.DeleteEdge(e)
	}
}
