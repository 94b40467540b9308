// internal/status/snapshot.go
package status

import "github.com/mfilippov/selftest-monitor/internal/selftest"

// Snapshot is the register-friendly projection of one drive's self-test
// state. It contains no logic and no memory of the past beyond current
// state.
type Snapshot struct {
	Health            uint16
	StatusValue       uint16
	RemainingPercent  uint16
	ShortMinutes      uint16
	ExtendedMinutes   uint16
	ConveyanceMinutes uint16
}

// FromSelfTest projects a decoded self-test value onto the status block.
// Running wins over any recorded verdict; a drive with neither is idle.
func FromSelfTest(st *selftest.SelfTest) Snapshot {
	var s Snapshot

	if st == nil {
		s.Health = HealthUnknown
		return s
	}

	switch {
	case st.IsRunning():
		s.Health = HealthRunning
	case st.Status.Passed != nil && *st.Status.Passed:
		s.Health = HealthPassed
	case st.Status.Passed != nil:
		s.Health = HealthFailed
	default:
		s.Health = HealthIdle
	}

	s.StatusValue = uint16(st.Status.Value)
	if st.Status.RemainingPercent != nil {
		s.RemainingPercent = uint16(*st.Status.RemainingPercent)
	}
	s.ShortMinutes = clampMinutes(st.PollingMinutes.Short)
	s.ExtendedMinutes = clampMinutes(st.PollingMinutes.Extended)
	s.ConveyanceMinutes = clampMinutes(st.PollingMinutes.Conveyance)

	return s
}

// clampMinutes fits a vendor-reported duration into one register.
func clampMinutes(v *uint64) uint16 {
	if v == nil {
		return 0
	}
	if *v > 65535 {
		return 65535
	}
	return uint16(*v)
}
