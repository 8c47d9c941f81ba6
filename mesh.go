package cdt

import "github.com/quadedge/cdt/internal/quadedge"

// Enumerate implements the enumeration visitor of section 4.8: a
// face-centric traversal that visits each bounded face once and its
// three bounding darts the first time they are encountered, producing
// the four dense arrays of the external interface (section 6). The
// per-quad-edge Visited mark (internal/quadedge) is the traversal's
// scratch state, per the concurrency model's note that read-only
// enumeration needs exclusive access because of it.
//
// When nonTrimmedOnly is true, only faces the region labeller marked
// non-trimmed are visited; an edge shared with an excluded face is still
// emitted once, from the included side. Call after labelRegions has run
// (every public constructor already does); Enumerate does not relabel.
func (t *Triangulation) Enumerate(nonTrimmedOnly bool) *Mesh {
	s := t.store
	s.ClearAllVisited()

	vertexOf := make(map[quadedge.VertexHandle]int)
	mesh := &Mesh{}

	vertexIndex := func(v quadedge.VertexHandle) int {
		if i, ok := vertexOf[v]; ok {
			return i
		}
		i := len(mesh.Vertices)
		vertexOf[v] = i
		x, y := s.VertexXY(v)
		mesh.Vertices = append(mesh.Vertices, Point{X: x, Y: y})
		return i
	}

	processed := make([]bool, s.FaceCount())

	n := s.DartCount()
	for i := 0; i < n; i++ {
		d := quadedge.DartHandle(i)
		if !s.QuadEdgeAlive(d) {
			continue
		}
		f := s.Face(d)
		if f == quadedge.NilFace || !s.FaceBounded(f) {
			continue
		}
		if processed[f] {
			continue
		}
		if nonTrimmedOnly && regionMark(s.FaceRegion(f)) != nonTrimmed {
			continue
		}
		processed[f] = true

		d2 := s.LeftNext(d)
		d3 := s.LeftNext(d2)
		if !quadedge.SameEdge(s.LeftNext(d3), d) {
			fail(InternalInconsistency, "bounded face is not a triangle")
		}

		tri := [3]quadedge.DartHandle{d, d2, d3}
		mesh.Triangles = append(mesh.Triangles, Triangle{
			A: vertexIndex(s.Origin(d)),
			B: vertexIndex(s.Origin(d2)),
			C: vertexIndex(s.Origin(d3)),
		})

		for _, cur := range tri {
			if s.Visited(cur) {
				continue
			}
			s.SetVisited(cur, true)

			tag := Regular
			switch {
			case s.Constrained(cur):
				tag = Constrained
			case !s.FaceBounded(s.Face(s.Sym(cur))):
				tag = Boundary
			}
			mesh.Edges = append(mesh.Edges, EdgeIndex{A: vertexIndex(s.Origin(cur)), B: vertexIndex(s.Dest(cur))})
			mesh.EdgeTags = append(mesh.EdgeTags, tag)
		}
	}

	return mesh
}
