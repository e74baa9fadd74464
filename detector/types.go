package detector

import "github.com/katalvlaran/gid/graph"

// VertexID is the caller-supplied integer key identifying a vertex.
type VertexID = graph.VertexID

// Status is one of the four classification states a vertex can be in.
// Status only ever progresses toward LIVE or DEAD, never back: OPEN -> LIVE,
// OPEN -> UNKNOWN -> LIVE, OPEN -> UNKNOWN -> DEAD are the only transitions.
type Status int

const (
	// StatusOpen: not yet closed and not yet known live.
	StatusOpen Status = iota
	// StatusUnknown: closed, but dependent on ancestors still being evaluated.
	StatusUnknown
	// StatusLive: some directed path from this vertex reaches a terminal.
	StatusLive
	// StatusDead: every vertex reachable from this one is closed and non-terminal.
	StatusDead
)

// String renders a Status using the lowercase names the result document uses.
func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusUnknown:
		return "unknown"
	case StatusLive:
		return "live"
	case StatusDead:
		return "dead"
	default:
		return "invalid"
	}
}

// Snapshot partitions every vertex ever mentioned into the four classes.
// Each slice is sorted ascending.
type Snapshot struct {
	Live    []VertexID
	Dead    []VertexID
	Unknown []VertexID
	Open    []VertexID
}

// Detector is the contract every dead-state detector satisfies. All five
// implementations report statuses consistent with the definitions on the
// Status constants above for the current state of the stream processed
// so far; LIVE and DEAD reports are never revoked once made.
type Detector interface {
	// AddEdge records a directed edge u->v, possibly transitioning statuses.
	AddEdge(u, v VertexID)
	// MarkClosed sets closed=true on u; a no-op if u is already closed.
	MarkClosed(u VertexID)
	// MarkTerminal sets terminal=true on u (implicitly closing it) and
	// transitions u to LIVE; a no-op if u is already terminal.
	MarkTerminal(u VertexID)
	// Status returns the current classification of u.
	Status(u VertexID) Status
	// Snapshot returns the four sets partitioning every vertex ever mentioned.
	Snapshot() Snapshot
}

// Algorithm names one of the five concrete detector strategies.
type Algorithm int

const (
	AlgoNaive Algorithm = iota
	AlgoSimple
	AlgoBFGT
	AlgoLog
	AlgoJump
)

// String renders the algorithm's long name.
func (a Algorithm) String() string {
	switch a {
	case AlgoNaive:
		return "naive"
	case AlgoSimple:
		return "simple"
	case AlgoBFGT:
		return "bfgt"
	case AlgoLog:
		return "log"
	case AlgoJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Flag renders the single-letter CLI flag value for -a/-e (spec ss6).
func (a Algorithm) Flag() string {
	switch a {
	case AlgoNaive:
		return "n"
	case AlgoSimple:
		return "s"
	case AlgoBFGT:
		return "b"
	case AlgoLog:
		return "l"
	case AlgoJump:
		return "j"
	default:
		return "?"
	}
}

// All lists every concrete algorithm in a stable order, used by the driver
// to run all five when no -a flag narrows the selection.
func All() []Algorithm {
	return []Algorithm{AlgoNaive, AlgoSimple, AlgoBFGT, AlgoLog, AlgoJump}
}

// ParseAlgorithm maps a CLI flag letter (n,s,b,l,j) to an Algorithm.
func ParseAlgorithm(flagValue string) (Algorithm, bool) {
	for _, a := range All() {
		if a.Flag() == flagValue {
			return a, true
		}
	}

	return 0, false
}
