package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaJSON is the snapshot file contract. Validation is stricter than the
// tolerant load path on structure (types, required id, enum spellings) so
// authoring mistakes surface before a permissive parse papers over them.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "project": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "startDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
      }
    },
    "calendar": {
      "type": "object",
      "properties": {
        "workingDays": {
          "type": "array",
          "items": {"type": "integer", "minimum": 0, "maximum": 6}
        },
        "exceptions": {
          "type": "object",
          "additionalProperties": {"type": "string"}
        }
      }
    },
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "parentId": {"type": ["string", "null"]},
          "duration": {"type": "integer", "minimum": 0},
          "constraintType": {
            "enum": ["ASAP", "SNET", "SNLT", "FNET", "FNLT", "MFO"]
          },
          "constraintDate": {
            "type": ["string", "null"],
            "pattern": "^\\d{4}-\\d{2}-\\d{2}$"
          },
          "schedulingMode": {"enum": ["auto", "manual"]},
          "start": {"type": ["string", "null"], "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
          "end": {"type": ["string", "null"], "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
          "dependencies": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["predecessorId"],
              "properties": {
                "predecessorId": {"type": "string", "minLength": 1},
                "type": {"enum": ["FS", "SS", "FF", "SF"]},
                "lag": {"type": "integer"}
              }
            }
          }
        }
      }
    }
  }
}`

// Validate checks a snapshot file against the schema and returns the list of
// violations, one message per failing location. An empty list means the file
// is valid.
func Validate(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("snapshot.schema.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile("snapshot.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil, nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, err
	}

	var violations []string
	collectViolations(&violations, ve)
	return violations, nil
}

// collectViolations walks the validation error tree, keeping only the leaf
// causes — the inner errors that name the actual failing fields.
func collectViolations(out *[]string, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, fmt.Sprintf("%s: %s", loc, err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectViolations(out, cause)
	}
}
