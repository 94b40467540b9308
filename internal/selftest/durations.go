// internal/selftest/durations.go
package selftest

import "encoding/json"

// testTypeOrder fixes the emission order of duration pairs.
// Declaration order, never sorted.
var testTypeOrder = [...]string{"short", "extended", "conveyance"}

// TestType is one (kind, expected minutes) pair from the polling table.
type TestType struct {
	Name    string
	Minutes uint64
}

// TestTypes reduces the polling table to an ordered list of supported test
// kinds, in declared order (short, extended, conveyance).
//
// The table is re-expressed as a generic value and every present field
// re-validated as an unsigned integer before anything is emitted. A single
// malformed present field fails the whole enumeration with
// *InconsistentDurationError: a value that stopped being numeric after
// deserialization means the table cannot be trusted, so no partial list is
// ever returned. Absent kinds are filtered out, never emitted as zero
// pairs.
func (st *SelfTest) TestTypes() ([]TestType, error) {
	raw, err := json.Marshal(st.PollingMinutes)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return enumerateFields(fields)
}

func enumerateFields(fields map[string]any) ([]TestType, error) {
	// Pass 1: validate every present field. First failure wins,
	// deterministically in declared order.
	parsed := make(map[string]uint64, len(fields))
	for _, name := range testTypeOrder {
		v, ok := fields[name]
		if !ok || v == nil {
			continue
		}
		u, ok := asUint(v)
		if !ok {
			return nil, &InconsistentDurationError{Field: name}
		}
		parsed[name] = u
	}

	// Pass 2: build the list only once the whole table checked out.
	var out []TestType
	for _, name := range testTypeOrder {
		if u, ok := parsed[name]; ok {
			out = append(out, TestType{Name: name, Minutes: u})
		}
	}
	return out, nil
}
