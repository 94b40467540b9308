// internal/export/exporter.go
package export

import (
	"errors"
	"fmt"

	"github.com/mfilippov/selftest-monitor/internal/status"
)

// endpointClient is the exact contract the exporter uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteRegisters(addr uint16, regs []uint16) error
}

// Config pins one drive's block location inside the status memory.
type Config struct {
	DeviceName string
	Slot       uint16
}

// Exporter delivers one drive's status block into Modbus holding
// registers. After any failed write, the next call re-asserts the block
// regardless of change tracking.
type Exporter struct {
	cfg Config
	cli endpointClient

	needFull bool
	last     status.Snapshot
}

func New(cfg Config, cli endpointClient) (*Exporter, error) {
	if cli == nil {
		return nil, errors.New("export: client required")
	}
	return &Exporter{cfg: cfg, cli: cli, needFull: true}, nil
}

// Deliver writes the snapshot if it differs from the last delivered one.
// The whole block is always written: one drive block is small enough that
// per-slot deltas buy nothing, and full writes keep the name slots
// asserted.
func (e *Exporter) Deliver(s status.Snapshot) error {
	if !e.needFull && s == e.last {
		return nil
	}

	base := e.cfg.Slot * status.SlotsPerDevice
	regs := status.Encode(s, e.cfg.DeviceName)

	if err := e.cli.WriteRegisters(base, regs); err != nil {
		e.needFull = true
		return fmt.Errorf("export: block write failed (device=%s slot=%d): %w",
			e.cfg.DeviceName, e.cfg.Slot, err)
	}

	e.needFull = false
	e.last = s
	return nil
}
