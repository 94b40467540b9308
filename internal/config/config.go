// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
}

type MonitorConfig struct {
	Smartctl SmartctlConfig `yaml:"smartctl"`
	Poll     PollConfig     `yaml:"poll"`
	Devices  []DeviceConfig `yaml:"devices"`
	Ignore   []string       `yaml:"ignore"`
	Export   *ExportConfig  `yaml:"export"`
}

// ---- SMARTCTL ----

type SmartctlConfig struct {
	Path      string `yaml:"path"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs   int  `yaml:"interval_ms"`
	OnChangeOnly bool `yaml:"on_change_only"`
}

// ---- DEVICE ----

// DeviceConfig names one drive to monitor.
// Slot opts the drive into status export (requires the export section).
type DeviceConfig struct {
	Path string  `yaml:"path"`
	Name string  `yaml:"name"`
	Slot *uint16 `yaml:"slot"`
}

// ---- EXPORT ----

type ExportConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Load reads and decodes a config file. Validation is separate.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return &cfg, nil
}
