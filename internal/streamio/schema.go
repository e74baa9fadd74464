package streamio

// updateStreamSchema is the JSON Schema for the update-stream wire format:
// an array of single-key tagged records, each either {"Add":[u,v]},
// {"Close":u} or {"Live":u}, with non-negative integer vertex keys.
const updateStreamSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "minProperties": 1,
    "maxProperties": 1,
    "additionalProperties": false,
    "properties": {
      "Add": {
        "type": "array",
        "minItems": 2,
        "maxItems": 2,
        "items": { "type": "integer", "minimum": 0 }
      },
      "Close": { "type": "integer", "minimum": 0 },
      "Live": { "type": "integer", "minimum": 0 }
    }
  }
}`
