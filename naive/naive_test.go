package naive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gid/detector"
	"github.com/katalvlaran/gid/naive"
)

func TestNaive_Scenario1_ClosedChainNoTerminal(t *testing.T) {
	d := naive.New()
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

func TestNaive_Scenario3_LineWithTerminalAtHead(t *testing.T) {
	d := naive.New()
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

func TestNaive_Scenario4_ClosedCycleNoTerminal(t *testing.T) {
	d := naive.New()
	d.AddEdge(0, 1)
	d.AddEdge(1, 0)
	d.MarkClosed(0)
	d.MarkClosed(1)

	snap := d.Snapshot()
	assert.Equal(t, []detector.VertexID{0, 1}, snap.Dead)
}

func TestNaive_MarkTerminalImpliesLive(t *testing.T) {
	d := naive.New()
	d.MarkTerminal(10)
	assert.Equal(t, detector.StatusLive, d.Status(10))
}

func TestNaive_UnmentionedVertexIsOpen(t *testing.T) {
	d := naive.New()
	assert.Equal(t, detector.StatusOpen, d.Status(99))
}
