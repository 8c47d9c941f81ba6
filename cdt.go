// Package cdt builds a Constrained Delaunay Triangulation of a Planar
// Straight-Line Graph: given a finite point set and a finite set of
// non-crossing segments whose endpoints are in that set, it produces a
// triangulation of the convex hull of the points in which every input
// segment is an edge and every triangle is locally Delaunay with respect
// to the unconstrained edges.
//
// The package has three synchronous, single-threaded entry points: New,
// InsertPoint, and InsertSegment. None of them suspend, and none roll
// back partial state on failure — if one returns an error the
// Triangulation's internal state is undefined and must be dropped
// (section 7).
package cdt

import (
	"github.com/quadedge/cdt/internal/predicates"
	"github.com/quadedge/cdt/internal/quadedge"
)

// Triangulation owns one CDT's store. It is not safe for concurrent use;
// distinct Triangulations share nothing and may be used from different
// goroutines freely (section 5).
type Triangulation struct {
	store *quadedge.Store

	// scaffold holds the handles of the three enclosing-triangle
	// corners, valid until removeScaffold runs.
	scaffold        [3]quadedge.VertexHandle
	scaffoldRemoved bool

	// byIndex maps an input point's index (as given to New) to its
	// vertex handle, for InsertSegment's by-index API.
	byIndex []quadedge.VertexHandle
}

// New builds a CDT from points and segments. points must have at least 3
// entries, no two identical; segments are index pairs into points with
// i != j and unique unordered pairs across the slice. New runs the
// consistency check of section 6 before any mutation: if it fails, the
// store never comes into existence and New returns an *Error with Kind
// InputInconsistent. On success the enclosing scaffold has already been
// removed and the result is ready for Enumerate.
func New(points []Point, segments []Segment) (t *Triangulation, err error) {
	defer recoverError(&err)

	checkConsistency(points, segments)

	t = &Triangulation{store: quadedge.NewStore()}
	t.buildScaffold(points)

	t.byIndex = make([]quadedge.VertexHandle, len(points))
	for i, p := range points {
		t.byIndex[i] = t.insertPoint(p)
	}
	for _, seg := range segments {
		t.insertSegmentByHandle(t.byIndex[seg.I], t.byIndex[seg.J])
	}

	t.removeScaffold()
	t.labelRegions()
	return t, nil
}

// InsertPoint adds p to an already-constructed triangulation (section
// 4.4). Inserting a point that already coincides with an existing vertex
// is a no-op. Returns InputOnConstrainedEdge if p lies exactly on an
// existing constrained edge.
func (t *Triangulation) InsertPoint(p Point) (err error) {
	defer recoverError(&err)
	t.insertPoint(p)
	t.labelRegions()
	return nil
}

// InsertSegment constrains the edge between the vertices at indices i and
// j of the original points slice passed to New (section 4.5). Inserting
// a segment whose endpoints are already joined by an edge merely marks
// it constrained; calling it again is idempotent. Returns
// SegmentCrossesSegment if satisfying the constraint would require
// crossing an edge that is already constrained.
func (t *Triangulation) InsertSegment(i, j int) (err error) {
	defer recoverError(&err)
	t.insertSegmentByHandle(t.byIndex[i], t.byIndex[j])
	t.labelRegions()
	return nil
}

func toPredPoint(p Point) predicates.Point { return predicates.Point{X: p.X, Y: p.Y} }

func (t *Triangulation) point(v quadedge.VertexHandle) predicates.Point {
	x, y := t.store.VertexXY(v)
	return predicates.Point{X: x, Y: y}
}

func (t *Triangulation) orgPoint(d quadedge.DartHandle) predicates.Point {
	return t.point(t.store.Origin(d))
}

func (t *Triangulation) destPoint(d quadedge.DartHandle) predicates.Point {
	return t.point(t.store.Dest(d))
}

// rightOf reports whether x lies strictly right of the directed edge e.
func (t *Triangulation) rightOf(x predicates.Point, e quadedge.DartHandle) bool {
	return predicates.Left(x, t.destPoint(e), t.orgPoint(e))
}

// leftOf reports whether x lies strictly left of the directed edge e.
func (t *Triangulation) leftOf(x predicates.Point, e quadedge.DartHandle) bool {
	return predicates.Left(x, t.orgPoint(e), t.destPoint(e))
}

func samePoint(a, b predicates.Point) bool { return a.X == b.X && a.Y == b.Y }
