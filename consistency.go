package cdt

import "github.com/quadedge/cdt/internal/predicates"

// checkConsistency runs the pre-construction check of section 6 and
// fails with InputInconsistent on the first violation found: duplicate
// points, every point collinear, a degenerate segment, two segments
// sharing both endpoints, a segment endpoint in another segment's
// interior, or two segments crossing in their open interiors.
func checkConsistency(points []Point, segments []Segment) {
	if len(points) < 3 {
		fail(InputInconsistent, "at least 3 points are required, got %d", len(points))
	}

	pts := make([]predicates.Point, len(points))
	for i, p := range points {
		pts[i] = toPredPoint(p)
	}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if samePoint(pts[i], pts[j]) {
				fail(InputInconsistent, "points %d and %d coincide", i, j)
			}
		}
	}

	allCollinear := true
	for i := 2; i < len(pts); i++ {
		if !predicates.Collinear(pts[0], pts[1], pts[i]) {
			allCollinear = false
			break
		}
	}
	if allCollinear {
		fail(InputInconsistent, "all input points are collinear")
	}

	for i, seg := range segments {
		if seg.I == seg.J {
			fail(InputInconsistent, "segment %d has equal endpoints (%d, %d)", i, seg.I, seg.J)
		}
	}

	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			if sameUnorderedPair(segments[i], segments[j]) {
				fail(InputInconsistent, "segments %d and %d share both endpoints", i, j)
			}
		}
	}

	for i, seg := range segments {
		p1, p2 := pts[seg.I], pts[seg.J]
		for j, other := range segments {
			if i == j {
				continue
			}
			for _, idx := range [2]int{other.I, other.J} {
				if idx == seg.I || idx == seg.J {
					continue
				}
				if predicates.Classify(p1, p2, pts[idx]) == predicates.ClassBetween {
					fail(InputInconsistent, "point %d lies in the interior of segment {%d,%d}", idx, seg.I, seg.J)
				}
			}
		}
	}

	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			if segmentsCross(pts, segments[i], segments[j]) {
				fail(InputInconsistent, "segments %d and %d cross", i, j)
			}
		}
	}
}

func sameUnorderedPair(a, b Segment) bool {
	return (a.I == b.I && a.J == b.J) || (a.I == b.J && a.J == b.I)
}

// segmentsCross reports whether the open interiors of a and b intersect:
// classify each endpoint of a with respect to b's supporting line and
// vice versa, and require strict opposite-side classifications both
// ways. Segments sharing an endpoint are handled by the interior-point
// check above, not here.
func segmentsCross(pts []predicates.Point, a, b Segment) bool {
	if a.I == b.I || a.I == b.J || a.J == b.I || a.J == b.J {
		return false
	}
	p1, p2 := pts[a.I], pts[a.J]
	q1, q2 := pts[b.I], pts[b.J]

	c1, c2 := predicates.Classify(p1, p2, q1), predicates.Classify(p1, p2, q2)
	if !straddle(c1, c2) {
		return false
	}
	d1, d2 := predicates.Classify(q1, q2, p1), predicates.Classify(q1, q2, p2)
	return straddle(d1, d2)
}

func straddle(c1, c2 predicates.Classification) bool {
	return (c1 == predicates.ClassLeft && c2 == predicates.ClassRight) ||
		(c1 == predicates.ClassRight && c2 == predicates.ClassLeft)
}
