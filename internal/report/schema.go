// internal/report/schema.go
package report

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// smartDataSchema constrains the self-test portion of the ata_smart_data
// section. Optional fields stay optional; present fields must have the
// device-reported shape.
const smartDataSchema = `{
  "type": "object",
  "required": ["self_test"],
  "properties": {
    "self_test": {
      "type": "object",
      "required": ["status", "polling_minutes"],
      "properties": {
        "status": {
          "type": "object",
          "required": ["value", "string"],
          "properties": {
            "value": {"type": "integer", "minimum": 0, "maximum": 255},
            "string": {"type": "string"},
            "remaining_percent": {"type": "integer", "minimum": 0, "maximum": 100},
            "passed": {"type": "boolean"}
          }
        },
        "polling_minutes": {
          "type": "object",
          "properties": {
            "short": {"type": "integer", "minimum": 0},
            "extended": {"type": "integer", "minimum": 0},
            "conveyance": {"type": "integer", "minimum": 0}
          }
        }
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("smart_data.json", strings.NewReader(smartDataSchema)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile("smart_data.json")
	})
	return schema, schemaErr
}

// ValidateSMARTData checks a SMART-data section against the embedded schema.
// It is a strict pre-gate for callers that want whole-shape conformance;
// the typed decoder performs its own checks and does not depend on it.
func ValidateSMARTData(d Document) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("report: schema compile: %w", err)
	}
	if err := s.Validate(map[string]any(d)); err != nil {
		return fmt.Errorf("report: smart data does not match schema: %w", err)
	}
	return nil
}
