package quadedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotSymInvRotIdentities(t *testing.T) {
	s := NewStore()
	d := s.NewEdge()

	assert.Equal(t, d, s.Sym(s.Sym(d)))
	assert.Equal(t, d, s.Rot(s.Rot(s.Rot(s.Rot(d)))))
	assert.Equal(t, d, s.InvRot(s.Rot(d)))
	assert.Equal(t, s.Sym(d), s.Rot(s.Rot(d)))
}

func TestOriginRingIsSimpleCycleAfterSplice(t *testing.T) {
	s := NewStore()
	a := s.NewEdge()
	b := s.NewEdge()
	c := s.NewEdge()

	// Splice three isolated edges' origins together into one ring.
	s.Splice(a, b)
	s.Splice(a, c)

	seen := map[DartHandle]bool{}
	cur := a
	for i := 0; i < 10; i++ {
		if seen[cur] {
			break
		}
		seen[cur] = true
		cur = s.OriginNext(cur)
	}
	require.Equal(t, a, cur, "origin ring did not close")
	assert.Len(t, seen, 3, "expected a simple 3-cycle")

	// Splice is self-inverse: repeating the two splices in reverse order
	// separates the rings again.
	s.Splice(a, c)
	s.Splice(a, b)
	assert.Equal(t, a, s.OriginNext(a), "expected a's origin ring to be a singleton again")
}

func TestDerivedWalksMatchComposition(t *testing.T) {
	s := NewStore()
	d := s.NewEdge()

	assert.Equal(t, s.Rot(s.OriginNext(s.Rot(d))), s.OriginPrev(d))
	assert.Equal(t, s.Sym(s.OriginNext(s.Sym(d))), s.DestNext(d))
	assert.Equal(t, s.InvRot(s.OriginNext(s.InvRot(d))), s.DestPrev(d))
	assert.Equal(t, s.Rot(s.OriginNext(s.InvRot(d))), s.LeftNext(d))
	assert.Equal(t, s.Sym(s.OriginNext(d)), s.LeftPrev(d))
	assert.Equal(t, s.InvRot(s.OriginNext(s.Rot(d))), s.RightNext(d))
	assert.Equal(t, s.OriginNext(s.Sym(d)), s.RightPrev(d))
}

// buildTriangle wires three isolated edges into a CCW triangle a->b->c->a
// using Splice the way Connect builds compound edges, returning the dart
// a->b.
func buildTriangle(s *Store, a, b, c VertexHandle) DartHandle {
	ab := s.NewEdge()
	s.SetOrigin(ab, a)
	s.SetDest(ab, b)

	bc := s.NewEdge()
	s.SetOrigin(bc, b)
	s.SetDest(bc, c)
	s.Splice(s.Sym(ab), bc)

	s.Connect(bc, ab)
	return ab
}

func TestConnectBuildsTriangleLeftCycle(t *testing.T) {
	s := NewStore()
	va := s.AddVertex(0, 0)
	vb := s.AddVertex(1, 0)
	vc := s.AddVertex(0, 1)

	ab := buildTriangle(s, va, vb, vc)

	bc := s.LeftNext(ab)
	ca := s.LeftNext(bc)
	back := s.LeftNext(ca)
	require.Equal(t, ab, back, "LeftNext cycle did not close in 3 steps")
	assert.Equal(t, vb, s.Dest(ab))
	assert.Equal(t, vc, s.Dest(bc))
	assert.Equal(t, va, s.Dest(ca))
}

func TestSwapPreservesQuadrilateral(t *testing.T) {
	s := NewStore()
	// Two triangles sharing edge b-d: a,b,d and d,b,c (CCW), forming
	// convex quadrilateral a,b,c,d with diagonal b-d.
	va := s.AddVertex(0, 0)
	vb := s.AddVertex(1, 0)
	vc := s.AddVertex(1, 1)
	vd := s.AddVertex(0, 1)

	ab := buildTriangle(s, va, vb, vd)
	bd := s.LeftNext(ab) // vb -> vd

	// Glue a second triangle onto the reverse of bd the same way
	// buildTriangle glues its third edge on: splice a fresh dart into
	// the shared vertex's origin ring, then Connect back around.
	db := s.Sym(bd) // vd -> vb
	g := s.NewEdge()
	s.SetOrigin(g, vb)
	s.SetDest(g, vc)
	s.Splice(bd, g)
	s.Connect(g, db)

	beforeOrg, beforeDest := s.Origin(bd), s.Dest(bd)
	s.Swap(bd)

	assert.False(t, s.Origin(bd) == beforeOrg && s.Dest(bd) == beforeDest, "Swap did not change bd's endpoints")
	swappedToAC := (s.Origin(bd) == va && s.Dest(bd) == vc) || (s.Origin(bd) == vc && s.Dest(bd) == va)
	assert.True(t, swappedToAC, "expected the swapped diagonal to run between va and vc, got %v -> %v", s.Origin(bd), s.Dest(bd))
}

func TestSwapRelinksVertexDartCache(t *testing.T) {
	s := NewStore()
	va := s.AddVertex(0, 0)
	vb := s.AddVertex(1, 0)
	vc := s.AddVertex(1, 1)
	vd := s.AddVertex(0, 1)

	ab := buildTriangle(s, va, vb, vd)
	bd := s.LeftNext(ab) // vb -> vd
	db := s.Sym(bd)      // vd -> vb

	g := s.NewEdge()
	s.SetOrigin(g, vb)
	s.SetDest(g, vc)
	s.Splice(bd, g)
	s.Connect(g, db)

	// Force both endpoints' cached darts onto the diagonal about to be
	// swapped, the scenario relinkVertexDart exists to handle.
	s.vertices[vb].dart = bd
	s.vertices[vd].dart = db

	s.Swap(bd)

	if d := s.VertexDart(vb); d != NilDart {
		assert.Equal(t, vb, s.Origin(d), "vb's cached dart no longer originates at vb after Swap")
	}
	if d := s.VertexDart(vd); d != NilDart {
		assert.Equal(t, vd, s.Origin(d), "vd's cached dart no longer originates at vd after Swap")
	}
}

func TestDeleteEdgeRelinksStartAndVertexDart(t *testing.T) {
	s := NewStore()
	va := s.AddVertex(0, 0)
	vb := s.AddVertex(1, 0)
	vc := s.AddVertex(0, 1)

	ab := buildTriangle(s, va, vb, vc)
	s.Start = ab

	s.DeleteEdge(ab)

	assert.False(t, SameQuadEdge(s.Start, ab), "Start still refers to the deleted quad-edge")
	if d := s.VertexDart(va); d != NilDart {
		assert.False(t, SameQuadEdge(d, ab), "va's cached dart still refers to the deleted quad-edge")
	}
	if d := s.VertexDart(vb); d != NilDart {
		assert.False(t, SameQuadEdge(d, ab), "vb's cached dart still refers to the deleted quad-edge")
	}
}
