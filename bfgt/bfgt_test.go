package bfgt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gid/bfgt"
	"github.com/katalvlaran/gid/detector"
)

func TestBFGT_Scenario1_ClosedChainNoTerminal(t *testing.T) {
	d := bfgt.New()
	d.AddEdge(0, 1)
	d.AddEdge(1, 2)
	d.MarkClosed(1)
	d.MarkClosed(2)

	snap := d.Snapshot()
	assert.Equal(t, []detector.VertexID{0}, snap.Open)
	assert.Equal(t, []detector.VertexID{1, 2}, snap.Dead)
	assert.Empty(t, snap.Live)
	assert.Empty(t, snap.Unknown)
}

func TestBFGT_Scenario3_LineWithTerminalAtHead(t *testing.T) {
	d := bfgt.New()
	d.AddEdge(0, 1)
	d.AddEdge(1, 2)
	d.AddEdge(2, 3)
	d.MarkTerminal(3)
	d.MarkClosed(2)
	d.MarkClosed(1)
	d.MarkClosed(0)

	snap := d.Snapshot()
	assert.Equal(t, []detector.VertexID{0, 1, 2, 3}, snap.Live)
}

// Scenario 4: a closed 2-cycle collapses into one super-node via the
// cycle-closure merge in AddEdge, so the dead check on that single super-node
// is a plain "all members closed, no terminal" test - no special-casing
// needed, unlike the simple detector's checkDead.
func TestBFGT_Scenario4_ClosedCycleNoTerminal(t *testing.T) {
	d := bfgt.New()
	d.AddEdge(0, 1)
	d.AddEdge(1, 0)
	d.MarkClosed(0)
	d.MarkClosed(1)

	snap := d.Snapshot()
	assert.Equal(t, []detector.VertexID{0, 1}, snap.Dead)
	assert.Empty(t, snap.Live)
	assert.Empty(t, snap.Unknown)
	assert.Empty(t, snap.Open)
}

func TestBFGT_Scenario5_TerminalAfterCycle(t *testing.T) {
	d := bfgt.New()
	d.AddEdge(0, 1)
	d.AddEdge(1, 0)
	d.MarkTerminal(2)
	d.AddEdge(1, 2)
	d.MarkClosed(0)
	d.MarkClosed(1)

	snap := d.Snapshot()
	assert.Equal(t, []detector.VertexID{0, 1, 2}, snap.Live)
	assert.Empty(t, snap.Dead)
}

func TestBFGT_MarkTerminalImpliesLive(t *testing.T) {
	d := bfgt.New()
	d.MarkTerminal(10)
	assert.Equal(t, detector.StatusLive, d.Status(10))
}

func TestBFGT_UnmentionedVertexIsOpen(t *testing.T) {
	d := bfgt.New()
	assert.Equal(t, detector.StatusOpen, d.Status(99))
}

func TestBFGT_MarkClosedIdempotent(t *testing.T) {
	d := bfgt.New()
	d.AddEdge(0, 1)
	d.MarkClosed(1)
	d.MarkClosed(1)
	assert.Equal(t, detector.StatusDead, d.Status(1))
}

// A three-vertex cycle closed with no terminal must collapse fully dead, not
// just the two directly-mutual vertices.
func TestBFGT_ThreeCycleClosedDead(t *testing.T) {
	d := bfgt.New()
	d.AddEdge(0, 1)
	d.AddEdge(1, 2)
	d.AddEdge(2, 0)
	d.MarkClosed(0)
	d.MarkClosed(1)
	d.MarkClosed(2)

	snap := d.Snapshot()
	assert.ElementsMatch(t, []detector.VertexID{0, 1, 2}, snap.Dead)
}

func TestBFGT_OrderIndependenceForCommutingAdds(t *testing.T) {
	a := bfgt.New()
	a.AddEdge(0, 1)
	a.AddEdge(1, 2)
	a.MarkTerminal(2)

	b := bfgt.New()
	b.MarkTerminal(2)
	b.AddEdge(1, 2)
	b.AddEdge(0, 1)

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}
