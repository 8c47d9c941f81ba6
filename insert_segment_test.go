package cdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// meshesEqual compares two Mesh values field by field; it assumes both
// came from Enumerate on Triangulations built from the same point order,
// so vertex indices line up without needing a coordinate-based remap.
func meshesEqual(a, b *Mesh) bool {
	if len(a.Vertices) != len(b.Vertices) || len(a.Edges) != len(b.Edges) || len(a.Triangles) != len(b.Triangles) {
		return false
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			return false
		}
	}
	for i := range a.Triangles {
		if a.Triangles[i] != b.Triangles[i] {
			return false
		}
	}
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] || a.EdgeTags[i] != b.EdgeTags[i] {
			return false
		}
	}
	return true
}

// TestInsertSegmentDeterministic builds the same PSLG twice, with a
// handful of segments whose insertion forces swapEdgesAwayFromConstraint
// to cross more than one triangle, and requires identical enumerated
// output both times.
func TestInsertSegmentDeterministic(t *testing.T) {
	points := []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10},
		{3, 4}, {6, 2}, {7, 7}, {2, 6},
	}
	segments := []Segment{
		{I: 0, J: 6},
		{I: 4, J: 1},
		{I: 7, J: 5},
	}

	var meshes [2]*Mesh
	for run := 0; run < 2; run++ {
		tri, err := New(points, segments)
		require.NoError(t, err, "run %d", run)
		meshes[run] = tri.Enumerate(false)
	}

	assert.True(t, meshesEqual(meshes[0], meshes[1]), "InsertSegment produced a different triangulation across identical runs")
}

// TestInsertSegmentDirectEdgeIsConstrained covers the case where the two
// endpoints of a requested segment are already joined by an edge: it
// must be tagged Constrained without changing the rest of the mesh.
func TestInsertSegmentDirectEdgeIsConstrained(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {5, 10}, {5, 3}}
	tri, err := New(points, nil)
	require.NoError(t, err)
	before := tri.Enumerate(false)
	i0, i1 := indexOf(before, points[0]), indexOf(before, points[1])
	require.True(t, containsEdge(before, i0, i1), "expected hull edge (0,0)-(10,0) to exist before constraining it")

	require.NoError(t, tri.InsertSegment(0, 1))

	after := tri.Enumerate(false)
	assert.Len(t, after.Triangles, len(before.Triangles))
	tag, ok := edgeTag(after, i0, i1)
	require.True(t, ok)
	assert.Equal(t, Constrained, tag)
}

// TestInsertSegmentThroughInteriorPoint covers section 4.5's loop over
// sub-segments: constraining two vertices that are not directly joined,
// with another vertex lying exactly on the straight line between them,
// must succeed and leave both halves constrained.
func TestInsertSegmentThroughInteriorPoint(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}}
	tri, err := New(points, nil)
	require.NoError(t, err)

	require.NoError(t, tri.InsertSegment(0, 2))

	m := tri.Enumerate(false)
	i0, i2, i4 := indexOf(m, points[0]), indexOf(m, points[2]), indexOf(m, points[4])
	tag1, ok1 := edgeTag(m, i0, i4)
	tag2, ok2 := edgeTag(m, i4, i2)
	require.True(t, ok1, "expected half-segment (0,4) present")
	require.True(t, ok2, "expected half-segment (4,2) present")
	assert.Equal(t, Constrained, tag1)
	assert.Equal(t, Constrained, tag2)
}
