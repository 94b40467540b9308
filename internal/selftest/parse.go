// internal/selftest/parse.go
package selftest

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/mfilippov/selftest-monitor/internal/report"
)

// SectionName is the fixed key of the self-test subsection inside a
// SMART-data section.
const SectionName = "self_test"

// FromSMARTData locates the self_test subsection of a SMART-data section
// and decodes it into a SelfTest.
//
// Lookup and decode are separate stages. A missing subsection yields
// *MissingSectionError; a present subsection with a missing or ill-typed
// field yields *MalformedFieldError naming the field. Optional fields that
// are absent or null decode to nil, not an error.
func FromSMARTData(data report.Document) (*SelfTest, error) {
	sub, present := data.Section(SectionName)
	if !present {
		return nil, &MissingSectionError{Section: SectionName}
	}
	if sub == nil {
		return nil, &MalformedFieldError{Path: SectionName, Reason: "expected an object"}
	}

	statusDoc, err := requireObject(sub, SectionName, "status")
	if err != nil {
		return nil, err
	}
	pollingDoc, err := requireObject(sub, SectionName, "polling_minutes")
	if err != nil {
		return nil, err
	}

	st, err := decodeStatus(statusDoc, SectionName+".status")
	if err != nil {
		return nil, err
	}
	pd, err := decodePolling(pollingDoc, SectionName+".polling_minutes")
	if err != nil {
		return nil, err
	}

	return &SelfTest{Status: st, PollingMinutes: pd}, nil
}

func requireObject(d report.Document, parent, name string) (report.Document, error) {
	child, present := d.Section(name)
	if !present {
		return nil, &MalformedFieldError{Path: parent + "." + name, Reason: "missing required field"}
	}
	if child == nil {
		return nil, &MalformedFieldError{Path: parent + "." + name, Reason: "expected an object"}
	}
	return child, nil
}

func decodeStatus(doc report.Document, path string) (Status, error) {
	var s Status

	v, ok := doc["value"]
	if !ok {
		return s, &MalformedFieldError{Path: path + ".value", Reason: "missing required field"}
	}
	u, ok := asUint(v)
	if !ok || u > math.MaxUint8 {
		return s, &MalformedFieldError{Path: path + ".value", Reason: "expected an unsigned integer in 0..255"}
	}
	s.Value = uint8(u)

	lv, ok := doc["string"]
	if !ok {
		return s, &MalformedFieldError{Path: path + ".string", Reason: "missing required field"}
	}
	label, ok := lv.(string)
	if !ok {
		return s, &MalformedFieldError{Path: path + ".string", Reason: "expected a string"}
	}
	s.String = label

	if rv, ok := doc["remaining_percent"]; ok && rv != nil {
		u, ok := asUint(rv)
		if !ok || u > 100 {
			return s, &MalformedFieldError{Path: path + ".remaining_percent", Reason: "expected an unsigned integer in 0..100"}
		}
		p := uint8(u)
		s.RemainingPercent = &p
	}

	if pv, ok := doc["passed"]; ok && pv != nil {
		b, ok := pv.(bool)
		if !ok {
			return s, &MalformedFieldError{Path: path + ".passed", Reason: "expected a boolean"}
		}
		s.Passed = &b
	}

	return s, nil
}

func decodePolling(doc report.Document, path string) (PollingDurations, error) {
	var p PollingDurations

	fields := []struct {
		name string
		dst  **uint64
	}{
		{"short", &p.Short},
		{"extended", &p.Extended},
		{"conveyance", &p.Conveyance},
	}

	for _, f := range fields {
		v, ok := doc[f.name]
		if !ok || v == nil {
			continue
		}
		u, ok := asUint(v)
		if !ok {
			return PollingDurations{}, &MalformedFieldError{Path: path + "." + f.name, Reason: "expected an unsigned integer"}
		}
		val := u
		*f.dst = &val
	}

	return p, nil
}

// asUint interprets a decoded JSON scalar as an unsigned integer.
// encoding/json decodes numbers as float64; integer kinds are accepted too
// so hand-built documents behave the same as parsed ones.
func asUint(v any) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != math.Trunc(n) || n > float64(math.MaxUint64) {
			return 0, false
		}
		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case uint64:
		return n, true
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return u, true
	}
	return 0, false
}
