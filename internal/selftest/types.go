// internal/selftest/types.go
package selftest

// Status is the device's own encoding of the current self-test state:
// a numeric code plus the accompanying human-readable string.
//
// RemainingPercent is present only while a test is actively running and
// progress is known. Passed is present only once a test has concluded with
// a recorded verdict; it is distinct from historical test log entries.
type Status struct {
	Value            uint8  `json:"value"`
	String           string `json:"string"`
	RemainingPercent *uint8 `json:"remaining_percent,omitempty"`
	Passed           *bool  `json:"passed,omitempty"`
}

// PollingDurations is the vendor-reported expected run length per self-test
// kind, in minutes. A nil field means the device does not support that
// kind. No ordering relationship between the three is guaranteed.
type PollingDurations struct {
	Short      *uint64 `json:"short,omitempty"`
	Extended   *uint64 `json:"extended,omitempty"`
	Conveyance *uint64 `json:"conveyance,omitempty"`
}

// SelfTest is the live self-test state of one drive, as reported in the
// ata_smart_data section of a smartctl report. It describes the current
// test only, never past tests.
//
// A SelfTest is never constructed partially: either both substructures
// decode, or construction fails. Values are immutable snapshots with no
// identity; two extractions from two documents are fully independent.
type SelfTest struct {
	Status         Status           `json:"status"`
	PollingMinutes PollingDurations `json:"polling_minutes"`
}

// IsRunning reports whether a self-test is currently in progress.
// Any nonzero status value means some test is running; the value does not
// say which kind.
func (st *SelfTest) IsRunning() bool {
	return st.Status.Value != 0
}
