// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	mon := cfg.Monitor

	// ------------------------------------------------------------
	// DEVICE LIST VALIDATION
	// ------------------------------------------------------------

	if len(mon.Devices) == 0 {
		return fmt.Errorf("config: at least one device required")
	}

	seen := make(map[string]struct{})
	for _, d := range mon.Devices {
		if d.Path == "" {
			return fmt.Errorf("config: device path must not be empty")
		}
		if _, dup := seen[d.Path]; dup {
			return fmt.Errorf("config: device %q listed twice", d.Path)
		}
		seen[d.Path] = struct{}{}

		// name sanity (ASCII only; the status block encoding is ASCII)
		for i := 0; i < len(d.Name); i++ {
			if d.Name[i] > 0x7F {
				return fmt.Errorf(
					"config: device %q: name must contain ASCII characters only",
					d.Path,
				)
			}
		}
	}

	// ------------------------------------------------------------
	// IGNORE PATTERN VALIDATION
	// ------------------------------------------------------------

	for _, pat := range mon.Ignore {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("config: invalid ignore pattern %q", pat)
		}
	}

	// ------------------------------------------------------------
	// POLL VALIDATION
	// ------------------------------------------------------------

	if mon.Poll.IntervalMs < 0 {
		return fmt.Errorf("config: poll interval_ms must not be negative")
	}

	// ------------------------------------------------------------
	// STATUS EXPORT VALIDATION (PER-DEVICE, OPT-IN)
	// ------------------------------------------------------------

	slotOwner := make(map[uint16]string)

	for _, d := range mon.Devices {
		// export is opt-in
		if d.Slot == nil {
			continue
		}

		if mon.Export == nil {
			return fmt.Errorf(
				"config: device %q: slot is set but no export section is defined",
				d.Path,
			)
		}

		if prev, exists := slotOwner[*d.Slot]; exists {
			return fmt.Errorf(
				"config: slot collision: slot=%d used by devices %q and %q",
				*d.Slot,
				prev,
				d.Path,
			)
		}

		slotOwner[*d.Slot] = d.Path
	}

	if mon.Export != nil && mon.Export.Endpoint == "" {
		return fmt.Errorf("config: export endpoint required")
	}

	return nil
}
