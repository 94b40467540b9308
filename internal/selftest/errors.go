// internal/selftest/errors.go
package selftest

import "fmt"

// MissingSectionError reports that the self-test subsection is absent from
// the input document. The caller most likely passed the wrong report
// section, or the device reports no self-test data at all.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("selftest: missing %q section", e.Section)
}

// MalformedFieldError reports a required field that is missing, or a
// present field with the wrong type, at deserialization time.
type MalformedFieldError struct {
	Path   string // dotted path, e.g. "self_test.status.value"
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("selftest: field %s: %s", e.Path, e.Reason)
}

// InconsistentDurationError reports a present polling-duration field that
// failed re-validation as an unsigned integer during enumeration.
type InconsistentDurationError struct {
	Field string
}

func (e *InconsistentDurationError) Error() string {
	return fmt.Sprintf("selftest: polling duration %q is not an unsigned integer", e.Field)
}
