package etf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gid/detector"
	"github.com/katalvlaran/gid/etf"
)

func TestInsert_SingletonIsItsOwnRoot(t *testing.T) {
	f := etf.New()
	f.Insert(1)
	assert.Equal(t, int64(1), int64(f.Root(1)))
	assert.True(t, f.Connected(1, 1))
}

func TestLink_MakesTreesConnectedAndRoot(t *testing.T) {
	f := etf.New()
	f.Insert(1)
	f.Insert(2)
	f.Insert(3)

	assert.False(t, f.Connected(1, 2))

	f.Link(2, 1) // 2 becomes a child of 1
	assert.True(t, f.Connected(1, 2))
	assert.Equal(t, int64(1), int64(f.Root(2)))

	f.Link(3, 2) // 3 becomes a grandchild of 1, via 2
	assert.True(t, f.Connected(1, 3))
	assert.Equal(t, int64(1), int64(f.Root(3)))
}

func TestCut_SeparatesSubtree(t *testing.T) {
	f := etf.New()
	f.Insert(1)
	f.Insert(2)
	f.Insert(3)
	f.Link(2, 1)
	f.Link(3, 2)

	f.Cut(2) // detaches 2 (and its child 3) from 1

	assert.False(t, f.Connected(1, 2))
	assert.True(t, f.Connected(2, 3))
	assert.Equal(t, int64(2), int64(f.Root(2)))
	assert.Equal(t, int64(1), int64(f.Root(1)))
}

func TestLink_ManySiblingsStayConnected(t *testing.T) {
	f := etf.New()
	f.Insert(0)
	for i := 1; i <= 20; i++ {
		f.Insert(int64AsVid(i))
		f.Link(int64AsVid(i), 0)
	}
	for i := 1; i <= 20; i++ {
		assert.True(t, f.Connected(0, int64AsVid(i)))
		assert.Equal(t, int64(0), int64(f.Root(int64AsVid(i))))
	}
}

func int64AsVid(i int) detector.VertexID { return detector.VertexID(i) }
