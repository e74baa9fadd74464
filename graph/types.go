package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the graph substrate.
var (
	// ErrNegativeVertexID indicates a caller supplied a negative vertex key.
	ErrNegativeVertexID = errors.New("graph: vertex id must be non-negative")
)

// VertexID is a caller-supplied opaque non-negative integer key identifying
// a vertex. Vertices are created lazily and never destroyed.
type VertexID int64

// Vertex holds the structural facts the substrate tracks about one vertex.
// Closed and Terminal are monotone: once true, a caller never sets them false.
type Vertex struct {
	ID       VertexID
	Closed   bool
	Terminal bool

	// seq is the insertion order of this vertex's first mention. It is
	// recorded but not read by any Graph method; OutNeighborsOrdered takes
	// its order from the per-vertex adjacency lists instead.
	seq int
}

// InvariantError reports a violation of one of the substrate's structural
// invariants (e.g. monotonicity of Closed/Terminal). It is never returned
// from normal operation; a detector that detects one treats it as a
// fail-fast bug: behavior is undefined past this point, the process should
// abort.
type InvariantError struct {
	Invariant string // short name, e.g. "monotonicity"
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("graph: invariant %s violated: %s", e.Invariant, e.Detail)
}

// NewInvariantError constructs an InvariantError for the given invariant tag.
func NewInvariantError(invariant, detail string) *InvariantError {
	return &InvariantError{Invariant: invariant, Detail: detail}
}
