package streamio

import (
	"encoding/json"
	"sort"

	"github.com/katalvlaran/gid/detector"
)

// document is the result-document wire shape: four sorted-ascending integer
// arrays partitioning every vertex ever mentioned.
type document struct {
	Live    []detector.VertexID `json:"live"`
	Dead    []detector.VertexID `json:"dead"`
	Unknown []detector.VertexID `json:"unknown"`
	Open    []detector.VertexID `json:"open"`
}

// Encode renders snap as the result-document JSON format, sorting each
// partition ascending regardless of the order Snapshot produced it in.
func Encode(snap detector.Snapshot) ([]byte, error) {
	doc := document{
		Live:    sortedCopy(snap.Live),
		Dead:    sortedCopy(snap.Dead),
		Unknown: sortedCopy(snap.Unknown),
		Open:    sortedCopy(snap.Open),
	}
	return json.Marshal(doc)
}

// DecodeDocument parses a result-document JSON payload back into a Snapshot, used
// to load an _expect.json file for comparison.
func DecodeDocument(raw []byte) (detector.Snapshot, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return detector.Snapshot{}, err
	}
	return detector.Snapshot{
		Live:    sortedCopy(doc.Live),
		Dead:    sortedCopy(doc.Dead),
		Unknown: sortedCopy(doc.Unknown),
		Open:    sortedCopy(doc.Open),
	}, nil
}

func sortedCopy(in []detector.VertexID) []detector.VertexID {
	out := make([]detector.VertexID, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
