package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gid/detector"
)

func TestSelectAlgorithms_DefaultsToAll(t *testing.T) {
	algos, err := selectAlgorithms("", "")
	require.NoError(t, err)
	assert.Equal(t, detector.All(), algos)
}

func TestSelectAlgorithms_OnlyNarrowsToOne(t *testing.T) {
	algos, err := selectAlgorithms("b", "")
	require.NoError(t, err)
	assert.Equal(t, []detector.Algorithm{detector.AlgoBFGT}, algos)
}

func TestSelectAlgorithms_ExcludeRemovesFromAll(t *testing.T) {
	algos, err := selectAlgorithms("", "n,j")
	require.NoError(t, err)
	assert.Equal(t, []detector.Algorithm{detector.AlgoSimple, detector.AlgoBFGT, detector.AlgoLog}, algos)
}

func TestSelectAlgorithms_RejectsUnknownFlag(t *testing.T) {
	_, err := selectAlgorithms("z", "")
	assert.Error(t, err)
}

func TestSnapshotsMatch_IgnoresOrder(t *testing.T) {
	a := detector.Snapshot{Live: []detector.VertexID{1, 2, 3}}
	b := detector.Snapshot{Live: []detector.VertexID{3, 1, 2}}
	assert.True(t, snapshotsMatch(a, b))
}

func TestSnapshotsMatch_DetectsMismatch(t *testing.T) {
	a := detector.Snapshot{Dead: []detector.VertexID{1}}
	b := detector.Snapshot{Dead: []detector.VertexID{2}}
	assert.False(t, snapshotsMatch(a, b))
}
