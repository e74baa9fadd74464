package streamio

import "errors"

// ErrMalformedInput wraps every way an update stream can fail validation:
// the JSON itself doesn't parse, or it parses but violates the record
// schema (spec's MalformedInput error kind).
var ErrMalformedInput = errors.New("streamio: malformed update stream")
