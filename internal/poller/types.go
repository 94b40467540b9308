// internal/poller/types.go
package poller

import (
	"time"

	"github.com/mfilippov/selftest-monitor/internal/selftest"
)

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	// ID is unique per result, for log correlation only.
	// The SelfTest value itself carries no identity.
	ID     string
	Device string
	At     time.Time

	// SelfTest is nil when Err is non-nil.
	SelfTest *selftest.SelfTest

	// Digest identifies the snapshot content: two results with equal
	// digests carry the same self-test state.
	Digest [32]byte

	Err error // non-nil means the poll cycle failed
}
