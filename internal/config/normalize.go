// internal/config/normalize.go
package config

import "github.com/bmatcuk/doublestar/v4"

// Default values applied by Normalize.
const (
	DefaultIntervalMs        = 60000
	DefaultSmartctlTimeoutMs = 10000
	DefaultExportTimeoutMs   = 2000
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	mon := &cfg.Monitor

	if mon.Poll.IntervalMs == 0 {
		mon.Poll.IntervalMs = DefaultIntervalMs
	}
	if mon.Smartctl.TimeoutMs == 0 {
		mon.Smartctl.TimeoutMs = DefaultSmartctlTimeoutMs
	}
	if mon.Export != nil && mon.Export.TimeoutMs == 0 {
		mon.Export.TimeoutMs = DefaultExportTimeoutMs
	}

	// ------------------------------------------------------------
	// DEVICE NORMALIZATION
	// ------------------------------------------------------------

	kept := mon.Devices[:0]
	for _, d := range mon.Devices {
		// Drop devices matching an ignore pattern.
		if matchesAny(mon.Ignore, d.Path) {
			continue
		}

		// Default name to the path; truncate to max 16 characters
		// (the status block name limit).
		if d.Name == "" {
			d.Name = d.Path
		}
		if len(d.Name) > 16 {
			d.Name = d.Name[:16]
		}

		kept = append(kept, d)
	}
	mon.Devices = kept
}

// matchesAny reports whether the path matches any ignore pattern.
// Patterns were validated earlier; a bad one cannot appear here.
func matchesAny(patterns []string, path string) bool {
	for _, pat := range patterns {
		if ok, _ := doublestar.Match(pat, path); ok {
			return true
		}
	}
	return false
}
