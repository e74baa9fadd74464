package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gid/avl"
	"github.com/katalvlaran/gid/detector"
)

// build creates a chain of n singletons concatenated left-to-right in value
// order 0..n-1 and returns their node handles in that order.
func build(f *avl.Forest, n int) []avl.NodeID {
	ids := make([]avl.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = f.NewSingleton(detector.VertexID(i))
	}
	root := ids[0]
	for i := 1; i < n; i++ {
		root = f.Concat(root, ids[i])
	}
	_ = root
	return ids
}

func inOrderValues(f *avl.Forest, root avl.NodeID, ids []avl.NodeID) []int {
	var out []int
	for pos := 0; pos < len(ids); pos++ {
		// brute-force: find which id has this position
		for _, id := range ids {
			if f.Root(id) == f.Root(root) && f.Position(id) == pos {
				out = append(out, int(f.Value(id)))
				break
			}
		}
	}
	return out
}

func TestConcat_PreservesOrder(t *testing.T) {
	f := avl.NewForest()
	ids := build(f, 7)
	root := f.Root(ids[0])
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, inOrderValues(f, root, ids))
}

func TestPosition_MatchesInsertionOrder(t *testing.T) {
	f := avl.NewForest()
	ids := build(f, 5)
	for i, id := range ids {
		assert.Equal(t, i, f.Position(id))
	}
}

func TestSplit_ThenConcat_RoundTrips(t *testing.T) {
	f := avl.NewForest()
	ids := build(f, 10)
	mid := ids[4]

	left, right := f.Split(mid)
	assert.Equal(t, 4, f.Size(left))
	assert.Equal(t, 6, f.Size(right)) // right includes mid itself

	for i := 0; i < 4; i++ {
		assert.Equal(t, f.Root(left), f.Root(ids[i]))
		assert.Equal(t, i, f.Position(ids[i]))
	}
	for i := 4; i < 10; i++ {
		assert.Equal(t, f.Root(right), f.Root(ids[i]))
		assert.Equal(t, i-4, f.Position(ids[i]))
	}

	rejoined := f.Concat(left, right)
	for i := 0; i < 10; i++ {
		assert.Equal(t, f.Root(rejoined), f.Root(ids[i]))
		assert.Equal(t, i, f.Position(ids[i]))
	}
}

func TestSplit_AtFirstAndLast(t *testing.T) {
	f := avl.NewForest()
	ids := build(f, 4)

	left, right := f.Split(ids[0])
	assert.Equal(t, avl.Nil, left)
	assert.Equal(t, 4, f.Size(right))

	left2, right2 := f.Split(ids[3])
	assert.Equal(t, 3, f.Size(left2))
	assert.Equal(t, 1, f.Size(right2))
}

func TestSingleton_RootIsItself(t *testing.T) {
	f := avl.NewForest()
	id := f.NewSingleton(42)
	assert.Equal(t, id, f.Root(id))
	assert.Equal(t, 0, f.Position(id))
	assert.Equal(t, 1, f.Size(id))
}
