package streamio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gid/detector"
	"github.com/katalvlaran/gid/internal/streamio"
)

func TestDecode_ParsesAllThreeRecordKinds(t *testing.T) {
	raw := []byte(`[{"Add":[0,1]},{"Close":1},{"Live":2}]`)

	records, err := streamio.Decode(raw)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, streamio.Record{Kind: streamio.KindAdd, U: 0, V: 1}, records[0])
	assert.Equal(t, streamio.Record{Kind: streamio.KindClose, U: 1}, records[1])
	assert.Equal(t, streamio.Record{Kind: streamio.KindLive, U: 2}, records[2])
}

func TestDecode_RejectsUnknownKey(t *testing.T) {
	_, err := streamio.Decode([]byte(`[{"Delete":1}]`))
	assert.ErrorIs(t, err, streamio.ErrMalformedInput)
}

func TestDecode_RejectsMultiKeyRecord(t *testing.T) {
	_, err := streamio.Decode([]byte(`[{"Add":[0,1],"Close":1}]`))
	assert.ErrorIs(t, err, streamio.ErrMalformedInput)
}

func TestDecode_RejectsNegativeVertex(t *testing.T) {
	_, err := streamio.Decode([]byte(`[{"Close":-1}]`))
	assert.ErrorIs(t, err, streamio.ErrMalformedInput)
}

func TestDecode_RejectsNotAnArray(t *testing.T) {
	_, err := streamio.Decode([]byte(`{"Add":[0,1]}`))
	assert.ErrorIs(t, err, streamio.ErrMalformedInput)
}

func TestDecode_RejectsInvalidJSON(t *testing.T) {
	_, err := streamio.Decode([]byte(`not json`))
	assert.ErrorIs(t, err, streamio.ErrMalformedInput)
}

func TestEncode_SortsEachPartitionAscending(t *testing.T) {
	snap := detector.Snapshot{
		Live: []detector.VertexID{3, 1, 2},
		Dead: []detector.VertexID{5, 4},
	}

	raw, err := streamio.Encode(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"live":[1,2,3],"dead":[4,5],"unknown":[],"open":[]}`, string(raw))
}

func TestDecodeDocument_RoundTripsEncode(t *testing.T) {
	snap := detector.Snapshot{
		Live: []detector.VertexID{1, 2},
		Open: []detector.VertexID{3},
	}

	raw, err := streamio.Encode(snap)
	require.NoError(t, err)

	back, err := streamio.DecodeDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, snap.Live, back.Live)
	assert.Equal(t, snap.Open, back.Open)
}
