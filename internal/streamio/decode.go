package streamio

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/katalvlaran/gid/detector"
)

// RecordKind identifies which of the three update-stream record shapes a
// Record holds.
type RecordKind int

const (
	// KindAdd is {"Add":[u,v]}.
	KindAdd RecordKind = iota
	// KindClose is {"Close":u}.
	KindClose
	// KindLive is {"Live":u}.
	KindLive
)

// Record is one decoded update-stream entry. Only the fields relevant to
// Kind are populated: KindAdd sets U and V, KindClose/KindLive set only U.
type Record struct {
	Kind RecordKind
	U    detector.VertexID
	V    detector.VertexID
}

// rawRecord mirrors the wire shape for a single decode pass; gojsonschema
// has already rejected anything with more than one of these keys set, or
// with a key missing, so at most one field here is non-nil after decode.
type rawRecord struct {
	Add   *[2]int64 `json:"Add,omitempty"`
	Close *int64    `json:"Close,omitempty"`
	Live  *int64    `json:"Live,omitempty"`
}

// Decode validates raw against the update-stream JSON Schema and decodes it
// into an ordered slice of Records. Any schema violation or parse failure
// is reported as ErrMalformedInput.
func Decode(raw []byte) ([]Record, error) {
	schemaLoader := gojsonschema.NewStringLoader(updateStreamSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, describeErrors(result.Errors()))
	}

	var raws []rawRecord
	if err := json.Unmarshal(raw, &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	records := make([]Record, 0, len(raws))
	for _, r := range raws {
		switch {
		case r.Add != nil:
			records = append(records, Record{Kind: KindAdd, U: detector.VertexID(r.Add[0]), V: detector.VertexID(r.Add[1])})
		case r.Close != nil:
			records = append(records, Record{Kind: KindClose, U: detector.VertexID(*r.Close)})
		case r.Live != nil:
			records = append(records, Record{Kind: KindLive, U: detector.VertexID(*r.Live)})
		default:
			return nil, fmt.Errorf("%w: record with no recognized key", ErrMalformedInput)
		}
	}

	return records, nil
}

func describeErrors(errs []gojsonschema.ResultError) string {
	if len(errs) == 0 {
		return "invalid document"
	}
	return errs[0].String()
}

// Apply replays a single Record against d.
func Apply(d detector.Detector, r Record) {
	switch r.Kind {
	case KindAdd:
		d.AddEdge(r.U, r.V)
	case KindClose:
		d.MarkClosed(r.U)
	case KindLive:
		d.MarkTerminal(r.U)
	}
}
