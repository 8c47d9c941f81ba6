package cdt

import "github.com/quadedge/cdt/internal/quadedge"

// labelRegions implements section 4.7's three-sweep region labeller. It
// rebuilds the face partition first, since faces are only ever kept
// current at the end of a public operation (see faces.go), then floods
// region marks across it without ever crossing a constrained edge.
//
//  1. Every bounded face reachable from the unbounded face by crossing an
//     unconstrained hull edge is trimmed.
//  2. Every bounded face reachable from the unbounded face by crossing a
//     constrained hull edge is nonTrimmed.
//  3. Any face still unmarked after (1) and (2) takes the opposite mark
//     of a labelled neighbour across a constrained edge, repeated to a
//     fixpoint.
func (t *Triangulation) labelRegions() {
	t.rebuildFaces()
	s := t.store

	marks := make([]regionMark, s.FaceCount())

	var floodFrom func(start quadedge.DartHandle, mark regionMark)
	floodFrom = func(start quadedge.DartHandle, mark regionMark) {
		f := s.Face(start)
		if f == quadedge.NilFace || !s.FaceBounded(f) || marks[f] != unmarked {
			return
		}
		marks[f] = mark
		d := start
		for {
			if !s.Constrained(d) {
				floodFrom(s.Sym(d), mark)
			}
			d = s.LeftNext(d)
			if quadedge.SameEdge(d, start) {
				break
			}
		}
	}

	n := s.DartCount()
	for i := 0; i < n; i++ {
		d := quadedge.DartHandle(i)
		if !s.QuadEdgeAlive(d) {
			continue
		}
		f := s.Face(d)
		if f == quadedge.NilFace || s.FaceBounded(f) {
			continue
		}
		// d bounds the unbounded face; its Sym crosses into the hull.
		hull := s.Sym(d)
		if s.Constrained(hull) {
			floodFrom(hull, nonTrimmed)
		} else {
			floodFrom(hull, trimmed)
		}
	}

	for {
		changed := false
		for i := 0; i < n; i++ {
			d := quadedge.DartHandle(i)
			if !s.QuadEdgeAlive(d) || !s.Constrained(d) {
				continue
			}
			f1, f2 := s.Face(d), s.Face(s.Sym(d))
			if f1 == quadedge.NilFace || f2 == quadedge.NilFace {
				continue
			}
			if !s.FaceBounded(f1) || !s.FaceBounded(f2) {
				continue
			}
			m1, m2 := marks[f1], marks[f2]
			switch {
			case m1 != unmarked && m2 == unmarked:
				marks[f2] = opposite(m1)
				changed = true
			case m2 != unmarked && m1 == unmarked:
				marks[f1] = opposite(m2)
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for f := 0; f < s.FaceCount(); f++ {
		fh := quadedge.FaceHandle(f)
		if !s.FaceAlive(fh) || !s.FaceBounded(fh) {
			continue
		}
		s.SetFaceRegion(fh, int(marks[f]))
	}
}

func opposite(m regionMark) regionMark {
	if m == trimmed {
		return nonTrimmed
	}
	return trimmed
}
