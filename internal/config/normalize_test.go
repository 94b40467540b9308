// internal/config/normalize_test.go
package config

import "testing"

func TestNormalize_Defaults(t *testing.T) {
	cfg := &Config{
		Monitor: MonitorConfig{
			Devices: []DeviceConfig{{Path: "/dev/sda"}},
			Export:  &ExportConfig{Endpoint: "plc:502"},
		},
	}

	Normalize(cfg)

	if cfg.Monitor.Poll.IntervalMs != DefaultIntervalMs {
		t.Fatalf("interval default: got=%d", cfg.Monitor.Poll.IntervalMs)
	}
	if cfg.Monitor.Smartctl.TimeoutMs != DefaultSmartctlTimeoutMs {
		t.Fatalf("smartctl timeout default: got=%d", cfg.Monitor.Smartctl.TimeoutMs)
	}
	if cfg.Monitor.Export.TimeoutMs != DefaultExportTimeoutMs {
		t.Fatalf("export timeout default: got=%d", cfg.Monitor.Export.TimeoutMs)
	}
}

func TestNormalize_NameDefaultAndTruncation(t *testing.T) {
	cfg := &Config{
		Monitor: MonitorConfig{
			Devices: []DeviceConfig{
				{Path: "/dev/sda"},
				{Path: "/dev/disk/by-id/ata-VERY-LONG-SERIAL-0001", Name: "ata-VERY-LONG-SERIAL-0001"},
			},
		},
	}

	Normalize(cfg)

	if cfg.Monitor.Devices[0].Name != "/dev/sda" {
		t.Fatalf("name should default to path: got=%q", cfg.Monitor.Devices[0].Name)
	}
	if got := cfg.Monitor.Devices[1].Name; len(got) != 16 {
		t.Fatalf("name should truncate to 16 chars: got=%q", got)
	}
}

func TestNormalize_IgnoreFiltering(t *testing.T) {
	cfg := &Config{
		Monitor: MonitorConfig{
			Devices: []DeviceConfig{
				{Path: "/dev/sda"},
				{Path: "/dev/loop0"},
				{Path: "/dev/loop12"},
			},
			Ignore: []string{"/dev/loop*"},
		},
	}

	Normalize(cfg)

	if len(cfg.Monitor.Devices) != 1 || cfg.Monitor.Devices[0].Path != "/dev/sda" {
		t.Fatalf("ignore filtering failed: %+v", cfg.Monitor.Devices)
	}
}

func TestNormalize_NilConfig(t *testing.T) {
	Normalize(nil) // must not panic
}
