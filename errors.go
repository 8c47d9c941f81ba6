package cdt

import "github.com/pkg/errors"

// ErrorKind distinguishes the typed failures of section 7 from one
// another. Propagation follows osuushi-triangulate's panic/recover
// shape: internal routines panic with a *Error, and the three public
// entry points (New, InsertPoint, InsertSegment) recover and translate.
type ErrorKind int

const (
	// InputInconsistent is raised by the pre-construction consistency
	// check; the store never comes into existence.
	InputInconsistent ErrorKind = iota
	// InputOnConstrainedEdge is raised when InsertPoint is asked to
	// subdivide an existing constrained edge.
	InputOnConstrainedEdge
	// SegmentCrossesSegment is raised when InsertSegment's ray would
	// cross an edge that is already constrained.
	SegmentCrossesSegment
	// InternalInconsistency means some invariant of the mesh was
	// detected violated. Unlike internal/quadedge's own Debug-gated
	// assert helper, these checks are unconditional: by the time one of
	// them trips the mesh is already corrupt, so there is no release
	// build in which skipping the check is safe.
	InternalInconsistency
)

func (k ErrorKind) String() string {
	switch k {
	case InputInconsistent:
		return "InputInconsistent"
	case InputOnConstrainedEdge:
		return "InputOnConstrainedEdge"
	case SegmentCrossesSegment:
		return "SegmentCrossesSegment"
	case InternalInconsistency:
		return "InternalInconsistency"
	default:
		return "Unknown"
	}
}

// Error is the error type every public operation returns. The store's
// state is undefined after one is raised mid-construction; the caller
// must drop the Triangulation (section 7).
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string { return e.msg }

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: errors.Wrapf(errors.Errorf(format, args...), "cdt: %s", kind).Error()}
}

// fail panics with a *Error; it is caught by recoverError at each public
// entry point, following the same shape as
// osuushi-triangulate/internal/throw.go's fatalf/HandleTriangulatePanicRecover.
func fail(kind ErrorKind, format string, args ...interface{}) {
	panic(newError(kind, format, args...))
}

// recoverError turns a panic carrying a *Error into a returned error; any
// other panic (a genuine programming error) is allowed to propagate.
func recoverError(errOut *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*Error); ok {
		*errOut = e
		return
	}
	panic(r)
}
