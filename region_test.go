package cdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLabelRegionsNestedSquareAlternates builds an outer square with an
// unconstrained hull and a fully-constrained inner square strictly
// inside it. The ring of triangles between the two squares is reachable
// from the hull without crossing a constrained edge (section 4.7 sweep
// 1) and must end up trimmed; the triangles inside the inner square are
// only reachable by crossing the inner square's constrained boundary and
// must end up non-trimmed (sweep 3's fixpoint propagation).
func TestLabelRegionsNestedSquareAlternates(t *testing.T) {
	points := []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10},
		{3, 3}, {7, 3}, {7, 7}, {3, 7},
	}
	segments := []Segment{
		{I: 4, J: 5}, {I: 5, J: 6}, {I: 6, J: 7}, {I: 7, J: 4},
	}
	tri, err := New(points, segments)
	require.NoError(t, err)

	full := tri.Enumerate(false)
	inner := tri.Enumerate(true)

	require.Len(t, inner.Triangles, 2, "the inner square split by one diagonal")
	assert.Greater(t, len(full.Triangles), len(inner.Triangles))

	innerIdx := map[int]bool{
		indexOf(inner, points[4]): true,
		indexOf(inner, points[5]): true,
		indexOf(inner, points[6]): true,
		indexOf(inner, points[7]): true,
	}
	for _, tr := range inner.Triangles {
		for _, v := range [3]int{tr.A, tr.B, tr.C} {
			assert.True(t, innerIdx[v], "non-trimmed triangle %v references a vertex outside the inner square", tr)
		}
	}

	i4, i5, i6, i7 := indexOf(inner, points[4]), indexOf(inner, points[5]), indexOf(inner, points[6]), indexOf(inner, points[7])
	for _, pair := range [4][2]int{{i4, i5}, {i5, i6}, {i6, i7}, {i7, i4}} {
		tag, ok := edgeTag(inner, pair[0], pair[1])
		require.True(t, ok, "expected inner square edge %v to survive non-trimmed filtering", pair)
		assert.Equal(t, Constrained, tag, "inner square edge %v", pair)
	}
}

// TestLabelRegionsNoConstraintsAllTrimmed checks that with no
// constraints at all, sweep 1 alone reaches every bounded face, leaving
// sweep 3 a no-op.
func TestLabelRegionsNoConstraintsAllTrimmed(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {5, 10}, {5, 3}}
	tri, err := New(points, nil)
	require.NoError(t, err)

	full := tri.Enumerate(false)
	nonTrimmed := tri.Enumerate(true)
	assert.Len(t, nonTrimmed.Triangles, 0)
	assert.Len(t, full.Triangles, 3)
}
