// Package streamio decodes the update-stream JSON format and encodes the
// result-document JSON format, validating the input array against a JSON
// Schema before it is handed to a detector, adapted from the validate-then-
// decode pattern in the example pack's schema_validator.go.
package streamio
