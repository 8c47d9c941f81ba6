// Package quadedge implements the Guibas-Stolfi quad-edge topological
// substructure (darts, Splice, the rotation algebra) and the arena-backed
// store that owns vertices, darts, and faces by stable handle.
//
// The algebra here mirrors the teacher's pointer-based quad-edge
// (Rot/InvRot/Sym/OriginNext and the walks derived from them, Splice,
// Connect, Swap, DeleteEdge) with one structural change: every "pointer"
// is a small integer handle into one of the store's three arenas, per the
// rule that a cyclic graph of back-references is naturally expressed as
// arenas of records keyed by stable indices in a systems language.
package quadedge

import "github.com/pkg/errors"

// VertexHandle, DartHandle and FaceHandle are stable indices into a
// Store's arenas. Nil is -1 for all three.
type VertexHandle int
type DartHandle int
type FaceHandle int

const (
	NilVertex VertexHandle = -1
	NilDart   DartHandle   = -1
	NilFace   FaceHandle   = -1
)

type vertexRecord struct {
	x, y  float64
	dart  DartHandle
	alive bool
}

type dartRecord struct {
	origin VertexHandle
	face   FaceHandle
	next   DartHandle
}

type quadEdgeRecord struct {
	constrained bool
	visited     bool
	alive       bool
}

type faceRecord struct {
	dart    DartHandle
	bounded bool
	region  int
	alive   bool
}

// Debug gates this package's own assert helper below. It mirrors the
// teacher's own `var debug bool = false` toggle; release builds leave it
// false and pay nothing for the checks. It has no effect on the cdt
// package's own InternalInconsistency checks, which are unconditional.
var Debug = false

// Store owns every vertex, dart, and face of one triangulation. Handles
// are stable across insertion and O(1) removal; a handle from a different
// Store is a programming error.
type Store struct {
	vertices []vertexRecord
	darts    []dartRecord
	quads    []quadEdgeRecord
	faces    []faceRecord

	freeVertices []VertexHandle
	freeQuads    []int
	freeFaces    []FaceHandle

	// Start is the seed dart for point-location walks. The invariant
	// "Start is always a dart of some bounded face once at least one
	// bounded face exists" is maintained by every caller that might
	// remove the dart or face Start currently points at.
	Start DartHandle

	// M is the enclosing-triangle coordinate extent computed by the
	// scaffold builder (section 4.3); kept on the store since it is
	// per-triangulation state, not global.
	M float64
}

// NewStore returns an empty arena set.
func NewStore() *Store {
	return &Store{Start: NilDart}
}

func assert(cond bool, msg string) {
	if Debug && !cond {
		panic(errors.New("quadedge: internal inconsistency: " + msg))
	}
}

// --- Vertex arena ---

// AddVertex allocates a new vertex at (x, y) with no outgoing dart yet.
func (s *Store) AddVertex(x, y float64) VertexHandle {
	if n := len(s.freeVertices); n > 0 {
		h := s.freeVertices[n-1]
		s.freeVertices = s.freeVertices[:n-1]
		s.vertices[h] = vertexRecord{x: x, y: y, dart: NilDart, alive: true}
		return h
	}
	s.vertices = append(s.vertices, vertexRecord{x: x, y: y, dart: NilDart, alive: true})
	return VertexHandle(len(s.vertices) - 1)
}

// RemoveVertex frees a vertex's slot for reuse. The caller must have
// already detached every dart referencing it.
func (s *Store) RemoveVertex(v VertexHandle) {
	assert(s.vertices[v].alive, "double free of vertex")
	s.vertices[v] = vertexRecord{}
	s.freeVertices = append(s.freeVertices, v)
}

func (s *Store) VertexXY(v VertexHandle) (float64, float64) {
	r := s.vertices[v]
	return r.x, r.y
}

// VertexDart returns some dart whose origin is v, or NilDart.
func (s *Store) VertexDart(v VertexHandle) DartHandle {
	return s.vertices[v].dart
}

// --- Face arena ---

// AddFace allocates a face with no incident dart yet.
func (s *Store) AddFace(bounded bool) FaceHandle {
	if n := len(s.freeFaces); n > 0 {
		h := s.freeFaces[n-1]
		s.freeFaces = s.freeFaces[:n-1]
		s.faces[h] = faceRecord{dart: NilDart, bounded: bounded, alive: true}
		return h
	}
	s.faces = append(s.faces, faceRecord{dart: NilDart, bounded: bounded, alive: true})
	return FaceHandle(len(s.faces) - 1)
}

func (s *Store) RemoveFace(f FaceHandle) {
	assert(s.faces[f].alive, "double free of face")
	s.faces[f] = faceRecord{}
	s.freeFaces = append(s.freeFaces, f)
}

func (s *Store) FaceDart(f FaceHandle) DartHandle { return s.faces[f].dart }
func (s *Store) FaceBounded(f FaceHandle) bool    { return s.faces[f].bounded }
func (s *Store) FaceRegion(f FaceHandle) int       { return s.faces[f].region }
func (s *Store) SetFaceRegion(f FaceHandle, r int) { s.faces[f].region = r }
func (s *Store) FaceCount() int                    { return len(s.faces) }
func (s *Store) FaceAlive(f FaceHandle) bool       { return s.faces[f].alive }

// ResetFaces discards every face record and per-dart face link. Higher-
// level code rebuilds the face partition from the current dart topology
// on demand rather than maintaining face merges through every topology
// mutator (Splice/Swap/DeleteEdge never touch the Face field).
func (s *Store) ResetFaces() {
	s.faces = s.faces[:0]
	s.freeFaces = s.freeFaces[:0]
	for i := range s.darts {
		s.darts[i].face = NilFace
	}
}

// DartCount returns one past the highest dart index ever allocated,
// including freed (tombstoned) quad-edges; callers scanning all darts
// must skip ones whose owning quad-edge is no longer alive.
func (s *Store) DartCount() int { return len(s.darts) }

// QuadEdgeAlive reports whether d's owning quad-edge is currently live.
func (s *Store) QuadEdgeAlive(d DartHandle) bool { return s.quads[qeIndex(d)].alive }

// VertexAlive reports whether v is currently live.
func (s *Store) VertexAlive(v VertexHandle) bool { return s.vertices[v].alive }

// VertexCount returns one past the highest vertex handle ever allocated;
// callers scanning all vertices must skip ones that are no longer alive.
func (s *Store) VertexCount() int { return len(s.vertices) }

// --- Dart / quad-edge arena and algebra ---

func qeIndex(d DartHandle) int { return int(d) / 4 }
func qeOffset(d DartHandle) int { return int(d) % 4 }

// NewEdge allocates a fresh, unconnected quad-edge and returns dart 0 of
// it (an isolated undirected edge whose dual loops to itself, per the
// standard MakeEdge primitive).
func (s *Store) NewEdge() DartHandle {
	var base int
	if n := len(s.freeQuads); n > 0 {
		base = s.freeQuads[n-1]
		s.freeQuads = s.freeQuads[:n-1]
		s.quads[base] = quadEdgeRecord{alive: true}
	} else {
		base = len(s.quads)
		s.quads = append(s.quads, quadEdgeRecord{alive: true})
		s.darts = append(s.darts, make([]dartRecord, 4)...)
	}
	b := base * 4
	s.darts[b+0] = dartRecord{origin: NilVertex, face: NilFace, next: DartHandle(b + 0)}
	s.darts[b+1] = dartRecord{origin: NilVertex, face: NilFace, next: DartHandle(b + 3)}
	s.darts[b+2] = dartRecord{origin: NilVertex, face: NilFace, next: DartHandle(b + 2)}
	s.darts[b+3] = dartRecord{origin: NilVertex, face: NilFace, next: DartHandle(b + 1)}
	return DartHandle(b)
}

// FreeEdge releases the whole quad-edge owning d. The caller must have
// already spliced it out of every origin ring it participated in.
func (s *Store) FreeEdge(d DartHandle) {
	qi := qeIndex(d)
	assert(s.quads[qi].alive, "double free of quad-edge")
	s.quads[qi] = quadEdgeRecord{}
	s.freeQuads = append(s.freeQuads, qi)
}

// Rot rotates a dart 90 degrees counter-clockwise within its quad-edge.
func (s *Store) Rot(d DartHandle) DartHandle {
	base := qeIndex(d) * 4
	return DartHandle(base + (qeOffset(d)+1)%4)
}

// InvRot rotates a dart 90 degrees clockwise within its quad-edge.
func (s *Store) InvRot(d DartHandle) DartHandle {
	base := qeIndex(d) * 4
	return DartHandle(base + (qeOffset(d)+3)%4)
}

// Sym returns the same undirected edge, traversed the other way.
func (s *Store) Sym(d DartHandle) DartHandle {
	base := qeIndex(d) * 4
	return DartHandle(base + (qeOffset(d)+2)%4)
}

// OriginNext returns the next dart in d's origin ring, counter-clockwise.
func (s *Store) OriginNext(d DartHandle) DartHandle { return s.darts[d].next }

func (s *Store) setOriginNext(d, next DartHandle) { s.darts[d].next = next }

// OriginPrev, LeftNext, LeftPrev, RightNext, RightPrev, DestNext, DestPrev
// are compositions of Rot/InvRot/Sym/OriginNext, exactly as in the
// Guibas-Stolfi algebra and as the teacher's quadedge package expresses
// them.
func (s *Store) OriginPrev(d DartHandle) DartHandle {
	return s.Rot(s.OriginNext(s.Rot(d)))
}

func (s *Store) DestNext(d DartHandle) DartHandle {
	return s.Sym(s.OriginNext(s.Sym(d)))
}

func (s *Store) DestPrev(d DartHandle) DartHandle {
	return s.InvRot(s.OriginNext(s.InvRot(d)))
}

func (s *Store) LeftNext(d DartHandle) DartHandle {
	return s.Rot(s.OriginNext(s.InvRot(d)))
}

func (s *Store) LeftPrev(d DartHandle) DartHandle {
	return s.Sym(s.OriginNext(d))
}

func (s *Store) RightNext(d DartHandle) DartHandle {
	return s.InvRot(s.OriginNext(s.Rot(d)))
}

func (s *Store) RightPrev(d DartHandle) DartHandle {
	return s.OriginNext(s.Sym(d))
}

// Splice is the single self-inverse topology mutator: if a and b are in
// the same origin ring it separates them into two rings; otherwise it
// merges their two rings into one.
func (s *Store) Splice(a, b DartHandle) {
	alpha := s.Rot(s.OriginNext(a))
	beta := s.Rot(s.OriginNext(b))

	aNext, bNext := s.OriginNext(a), s.OriginNext(b)
	s.setOriginNext(a, bNext)
	s.setOriginNext(b, aNext)

	alphaNext, betaNext := s.OriginNext(alpha), s.OriginNext(beta)
	s.setOriginNext(alpha, betaNext)
	s.setOriginNext(beta, alphaNext)
}

// Origin, SetOrigin, Dest, SetDest read and write per-dart geometry.
func (s *Store) Origin(d DartHandle) VertexHandle { return s.darts[d].origin }

func (s *Store) SetOrigin(d DartHandle, v VertexHandle) {
	s.darts[d].origin = v
	if v != NilVertex && s.vertices[v].dart == NilDart {
		s.vertices[v].dart = d
	}
}

func (s *Store) Dest(d DartHandle) VertexHandle { return s.Origin(s.Sym(d)) }

func (s *Store) SetDest(d DartHandle, v VertexHandle) { s.SetOrigin(s.Sym(d), v) }

// Face, SetFace read and write the per-dart bounded-face pointer.
func (s *Store) Face(d DartHandle) FaceHandle { return s.darts[d].face }

func (s *Store) SetFace(d DartHandle, f FaceHandle) {
	s.darts[d].face = f
	if f != NilFace && s.faces[f].dart == NilDart {
		s.faces[f].dart = d
	}
}

// Constrained, SetConstrained read and write the quad-edge-wide flag
// shared by all four darts of an undirected edge.
func (s *Store) Constrained(d DartHandle) bool { return s.quads[qeIndex(d)].constrained }

func (s *Store) SetConstrained(d DartHandle, v bool) { s.quads[qeIndex(d)].constrained = v }

// Visited, SetVisited, ClearAllVisited support traversals (region
// labelling, enumeration) that need per-quad-edge scratch state.
func (s *Store) Visited(d DartHandle) bool { return s.quads[qeIndex(d)].visited }

func (s *Store) SetVisited(d DartHandle, v bool) { s.quads[qeIndex(d)].visited = v }

func (s *Store) ClearAllVisited() {
	for i := range s.quads {
		s.quads[i].visited = false
	}
}

// SameEdge reports whether a and b are the same dart.
func SameEdge(a, b DartHandle) bool { return a == b }

// SameQuadEdge reports whether a and b are darts of the same undirected
// quad-edge, regardless of which of its four darts each names.
func SameQuadEdge(a, b DartHandle) bool {
	if a == NilDart || b == NilDart {
		return a == b
	}
	return qeIndex(a) == qeIndex(b)
}

// Connect creates a new dart whose origin is a's destination and whose
// destination is b's origin, splicing it into both rings so that it
// closes a face with a and b.
func (s *Store) Connect(a, b DartHandle) DartHandle {
	e := s.NewEdge()
	s.SetOrigin(e, s.Dest(a))
	s.SetDest(e, s.Origin(b))
	s.Splice(e, s.LeftNext(a))
	s.Splice(s.Sym(e), b)
	return e
}

// DeleteEdge removes e from both of its endpoints' origin rings and frees
// its quad-edge. Any vertex or Start cache pointing at one of e's four
// darts is redirected to a dart that survives the removal first.
func (s *Store) DeleteEdge(e DartHandle) {
	sym := s.Sym(e)
	oPrevE := s.OriginPrev(e)
	oPrevSym := s.OriginPrev(sym)

	s.relinkVertexDart(s.Origin(e), e, oPrevE)
	s.relinkVertexDart(s.Origin(sym), sym, oPrevSym)
	if SameQuadEdge(s.Start, e) {
		switch {
		case !SameQuadEdge(oPrevE, e):
			s.Start = oPrevE
		case !SameQuadEdge(oPrevSym, e):
			s.Start = oPrevSym
		default:
			s.Start = NilDart
		}
	}

	s.Splice(e, oPrevE)
	s.Splice(sym, oPrevSym)
	s.FreeEdge(e)
}

// relinkVertexDart updates v's cached outgoing dart away from dying if it
// is currently cached there, using replacement — a dart in the same
// origin ring guaranteed to survive the Splice that is about to detach
// dying — instead. If dying was v's only dart, the cache goes stale
// (NilDart); the caller is expected to be removing v entirely in that
// case.
func (s *Store) relinkVertexDart(v VertexHandle, dying, replacement DartHandle) {
	if v == NilVertex || s.vertices[v].dart != dying {
		return
	}
	if replacement == dying {
		s.vertices[v].dart = NilDart
	} else {
		s.vertices[v].dart = replacement
	}
}

// Swap rotates an edge within the quadrilateral formed by its two
// incident triangles, replacing the diagonal.
func (s *Store) Swap(e DartHandle) {
	a := s.OriginPrev(e)
	sym := s.Sym(e)
	b := s.OriginPrev(sym)

	// e and sym are about to leave Org(e)'s and Org(sym)'s origin rings
	// and come back with different endpoints; redirect either vertex's
	// cached dart away from them first, same as DeleteEdge.
	s.relinkVertexDart(s.Origin(e), e, a)
	s.relinkVertexDart(s.Origin(sym), sym, b)

	s.Splice(e, a)
	s.Splice(sym, b)
	s.Splice(e, s.LeftNext(a))
	s.Splice(sym, s.LeftNext(b))
	s.SetOrigin(e, s.Dest(a))
	s.SetDest(e, s.Dest(b))
}
