// internal/smartctl/client.go
package smartctl

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/mfilippov/selftest-monitor/internal/report"
)

// SectionName is the report section this monitor consumes.
const SectionName = "ata_smart_data"

type Config struct {
	// Path to the smartctl binary. Empty means look it up on PATH.
	Path    string
	Timeout time.Duration
}

// Client runs smartctl and returns parsed report sections.
type Client struct {
	path    string
	timeout time.Duration
}

func New(cfg Config) (*Client, error) {
	path := cfg.Path
	if path == "" {
		p, err := exec.LookPath("smartctl")
		if err != nil {
			return nil, errors.New("smartctl: binary not found on PATH (install smartmontools)")
		}
		path = p
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{path: path, timeout: cfg.Timeout}, nil
}

// SMARTData runs `smartctl -a -j` for one device and returns the
// ata_smart_data section of the report.
//
// smartctl reserves nonzero exit bits for non-fatal conditions (failing
// attributes, past errors), so exit status is ignored whenever the output
// is parseable JSON.
func (c *Client) SMARTData(ctx context.Context, device string) (report.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, runErr := exec.CommandContext(ctx, c.path, "-a", "-j", device).Output()
	if len(out) == 0 {
		if runErr != nil {
			return nil, fmt.Errorf("smartctl: %s: %w", device, runErr)
		}
		return nil, fmt.Errorf("smartctl: %s: empty output", device)
	}

	doc, err := report.Parse(out)
	if err != nil {
		if runErr != nil {
			return nil, fmt.Errorf("smartctl: %s: %w", device, runErr)
		}
		return nil, fmt.Errorf("smartctl: %s: %w", device, err)
	}

	data, present := doc.Section(SectionName)
	if !present || data == nil {
		return nil, fmt.Errorf("smartctl: %s: report has no %s section", device, SectionName)
	}
	return data, nil
}
