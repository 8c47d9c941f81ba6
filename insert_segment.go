package cdt

import (
	"github.com/quadedge/cdt/internal/predicates"
	"github.com/quadedge/cdt/internal/quadedge"
)

// insertSegmentByHandle implements section 4.5, ported from
// original_source/cdt/Cdt.cpp's InsertSegment, one sub-segment at a
// time: FindVerticesOnTheRightSide collects the crossing edges,
// SwapEdgesAwayFromConstraint (Dyn-Goren-Rippa) removes them, and the
// surviving swapped list is re-checked for the local Delaunay property.
func (t *Triangulation) insertSegmentByHandle(v1, v2 quadedge.VertexHandle) {
	for {
		e1 := t.store.VertexDart(v1)
		if direct := t.findDartTo(e1, v2); direct != quadedge.NilDart {
			t.store.SetConstrained(direct, true)
			return
		}

		e2 := t.store.VertexDart(v2)
		var crossEdges []quadedge.DartHandle
		stop := t.findVerticesOnTheRightSide(e1, e2, &crossEdges)

		var endVertex quadedge.VertexHandle
		if len(crossEdges) == 0 {
			constraint := t.store.LeftPrev(stop)
			t.store.SetConstrained(constraint, true)
			endVertex = t.store.Origin(stop)
		} else {
			swapped := t.swapEdgesAwayFromConstraint(v1, t.store.Origin(stop), crossEdges)
			if len(swapped) == 0 {
				fail(InternalInconsistency, "swapEdgesAwayFromConstraint produced no constrained edge")
			}
			constraint := swapped[len(swapped)-1]
			swapped = swapped[:len(swapped)-1]
			t.store.SetConstrained(constraint, true)
			t.restoreDelaunayOverList(swapped)
			endVertex = t.store.Origin(stop)
		}

		if endVertex == v2 {
			return
		}
		v1 = endVertex
	}
}

// findDartTo returns a dart with origin start's vertex whose destination
// is v2, or NilDart if none exists.
func (t *Triangulation) findDartTo(start quadedge.DartHandle, v2 quadedge.VertexHandle) quadedge.DartHandle {
	e := start
	for {
		if t.store.Dest(e) == v2 {
			return e
		}
		e = t.store.OriginNext(e)
		if quadedge.SameEdge(e, start) {
			return quadedge.NilDart
		}
	}
}

// closestEdgeOnTheRight rotates around e's origin to find the edge that
// makes the smallest nonpositive angle with the oriented segment from
// e's origin to q: the edge on, or just clockwise of, the segment's
// supporting line, on its right side.
func (t *Triangulation) closestEdgeOnTheRight(e quadedge.DartHandle, q predicates.Point) quadedge.DartHandle {
	p := t.orgPoint(e)
	s := t.destPoint(e)
	orient := predicates.Classify(p, q, s)
	if orient == predicates.ClassDestination || orient == predicates.ClassBetween {
		return e
	}

	ccw := !(orient == predicates.ClassLeft || orient == predicates.ClassBehind)
	eaux := e
	for {
		if ccw {
			eaux = t.store.OriginNext(eaux)
		} else {
			eaux = t.store.OriginPrev(eaux)
		}
		s = t.destPoint(eaux)
		orient = predicates.Classify(p, q, s)
		switch {
		case orient == predicates.ClassDestination || orient == predicates.ClassBetween:
			return eaux
		case orient == predicates.ClassLeft && ccw:
			return t.store.OriginPrev(eaux)
		case orient == predicates.ClassRight && !ccw:
			return eaux
		}
	}
}

// findVerticesOnTheRightSide walks the edges crossed by the oriented
// segment from e1's origin to e2's origin, recording every crossed edge
// whose origin lies on the segment's right side into *crossEdges
// (deduplicated by origin), and returns a dart whose origin lies on the
// segment itself — the closest such vertex to e1's origin, not counting
// e1's origin.
func (t *Triangulation) findVerticesOnTheRightSide(e1, e2 quadedge.DartHandle, crossEdges *[]quadedge.DartHandle) quadedge.DartHandle {
	p := t.orgPoint(e1)
	q := t.orgPoint(e2)

	e := t.closestEdgeOnTheRight(e1, q)
	last := quadedge.NilVertex

	for {
		s := t.destPoint(e)
		orient := predicates.Classify(p, q, s)
		if orient == predicates.ClassBetween || orient == predicates.ClassDestination {
			return t.store.LeftNext(e)
		}

		if orient == predicates.ClassRight {
			e = t.store.LeftNext(e)
		}
		if t.store.Constrained(e) {
			fail(SegmentCrossesSegment, "segment crosses an existing constrained edge")
		}

		r := t.store.Origin(e)
		if r != last {
			*crossEdges = append(*crossEdges, e)
			last = r
		}

		e = t.store.LeftNext(t.store.Sym(e))
	}
}

// crossSegment reports whether c and d lie strictly on opposite sides of
// the supporting line of (a,b). It does not test a and b against the
// line through (c,d).
func crossSegment(a, b, c, d predicates.Point) bool {
	if predicates.Left(a, b, c) {
		return predicates.Left(b, a, d)
	}
	if predicates.Left(b, a, c) {
		return predicates.Left(a, b, d)
	}
	return false
}

// isConvex reports whether quadrilateral a,b,c,d (in CCW order) is
// strictly convex.
func isConvex(a, b, c, d predicates.Point) bool {
	return predicates.Left(b, c, d) && !predicates.LeftOn(b, a, d) && predicates.Left(a, c, d)
}

// findEnclosingEdges finds, among the darts sharing cross's origin, the
// two darts el and er that delimit the fan of edges whose interiors
// cross segment (p,q); el and er themselves do not cross it.
func (t *Triangulation) findEnclosingEdges(p, q predicates.Point, cross quadedge.DartHandle) (el, er quadedge.DartHandle) {
	el = t.store.Sym(t.store.LeftPrev(cross))
	for {
		s, dd := t.orgPoint(el), t.destPoint(el)
		if !crossSegment(p, q, s, dd) {
			break
		}
		el = t.store.Sym(t.store.LeftPrev(el))
		if quadedge.SameEdge(el, cross) {
			break
		}
	}

	er = t.store.LeftNext(t.store.Sym(cross))
	for {
		s, dd := t.orgPoint(er), t.destPoint(er)
		if !crossSegment(p, q, s, dd) {
			break
		}
		er = t.store.LeftNext(t.store.Sym(er))
		if quadedge.SameEdge(er, cross) {
			break
		}
	}
	return el, er
}

// swapEdgesAwayFromConstraint implements the Dyn-Goren-Rippa loop of
// section 4.5: repeatedly find a crossing edge from crossEdges whose
// enclosing fan spans less than 180 degrees, swap every swappable edge
// in that fan, and drop the entry once its fan is exhausted. Scanning
// restarts from the head of the (mutated) list after each entry is
// fully processed and erased — the deterministic order chosen for the
// open question of section 9.
func (t *Triangulation) swapEdgesAwayFromConstraint(v1, endVertex quadedge.VertexHandle, crossEdges []quadedge.DartHandle) []quadedge.DartHandle {
	p := t.point(v1)
	q := t.point(endVertex)

	var swapped []quadedge.DartHandle
	remaining := append([]quadedge.DartHandle(nil), crossEdges...)

	for len(remaining) > 0 {
		idx := -1
		var el, er quadedge.DartHandle
		for i, cross := range remaining {
			el, er = t.findEnclosingEdges(p, q, cross)
			a := t.destPoint(el)
			b := t.orgPoint(er)
			c := t.destPoint(er)
			if predicates.Left(a, b, c) {
				idx = i
				break
			}
		}
		if idx < 0 {
			fail(InternalInconsistency, "no crossing-edge fan with an angle under 180 degrees was found")
		}

		for !quadedge.SameEdge(el, t.store.Sym(t.store.LeftPrev(er))) {
			e := t.store.Sym(t.store.LeftPrev(er))
			for {
				a := t.orgPoint(e)
				c := t.destPoint(e)
				b := t.orgPoint(t.store.LeftPrev(t.store.Sym(e)))
				d := t.orgPoint(t.store.LeftPrev(e))

				if isConvex(a, b, c, d) {
					f := t.store.LeftNext(t.store.Sym(e))
					t.store.Swap(e)
					if !crossSegment(p, q, b, d) {
						swapped = append(swapped, e)
					}
					e = f
				}
				next := t.store.Sym(t.store.LeftPrev(e))
				if quadedge.SameEdge(next, el) {
					break
				}
				e = next
			}
		}

		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return swapped
}

// restoreDelaunayOverList implements section 4.5 step 4: for each
// unconstrained, non-boundary edge in the swapped list, test it against
// the apex of its left-face triangle and swap it if no longer locally
// Delaunay.
func (t *Triangulation) restoreDelaunayOverList(edges []quadedge.DartHandle) {
	for _, e := range edges {
		if t.store.Constrained(e) {
			continue
		}
		tDart := t.store.OriginPrev(e)
		apexRight := t.store.Dest(tDart)
		if !t.rightOf(t.point(apexRight), e) {
			continue
		}
		apexLeft := t.store.Dest(t.store.OriginNext(e))
		if t.inCircleTest(t.store.Origin(e), apexRight, t.store.Dest(e), apexLeft) {
			t.store.Swap(e)
		}
	}
}
