// internal/report/document.go
package report

import (
	"encoding/json"
	"fmt"
)

// Document is a decoded JSON tree, typically one section of a smartctl
// report. It is treated as a read-only snapshot: nothing in this module
// mutates it, so concurrent readers need no synchronization.
type Document map[string]any

// Parse decodes raw smartctl JSON output into a Document.
func Parse(b []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("report: parse: %w", err)
	}
	return d, nil
}

// Section returns the named child object.
// The second result reports whether the key exists at all; a key that is
// present but not an object returns (nil, true). Keeping presence and shape
// separate lets callers report "missing" and "wrong type" distinctly.
func (d Document) Section(name string) (Document, bool) {
	v, ok := d[name]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, true
	}
	return Document(m), true
}
