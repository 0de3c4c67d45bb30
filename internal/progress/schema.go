package progress

import (
	"bytes"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// payloadSchema is the shape the store is willing to deserialize. Anything
// that fails validation is treated exactly like an absent blob: the learner
// starts from the empty default rather than seeing an error.
const payloadSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schemaVersion", "totalPoints"],
  "properties": {
    "schemaVersion": {"type": "integer", "const": 1},
    "totalPoints": {"type": "integer", "minimum": 0},
    "stats": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["module", "theme", "totalAnswered", "correctAnswers"],
        "properties": {
          "module": {"type": "string"},
          "theme": {"type": "string"},
          "totalAnswered": {"type": "integer", "minimum": 0},
          "correctAnswers": {"type": "integer", "minimum": 0}
        }
      }
    },
    "history": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["date", "score", "total"],
        "properties": {
          "score": {"type": "integer", "minimum": 0},
          "total": {"type": "integer", "minimum": 0},
          "durationSecs": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(payloadSchema))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("progress.schema.json", doc); err != nil {
		return nil, err
	}
	return c.Compile("progress.schema.json")
})

func validatePayload(raw []byte) error {
	sch, err := compileSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	return sch.Validate(inst)
}
