// internal/export/exporter_test.go
package export

import (
	"errors"
	"testing"

	"github.com/mfilippov/selftest-monitor/internal/status"
)

type fakeEndpointClient struct {
	writes   int
	lastAddr uint16
	lastRegs []uint16
	fail     bool
}

func (f *fakeEndpointClient) WriteRegisters(addr uint16, regs []uint16) error {
	if f.fail {
		return errors.New("write refused")
	}
	f.writes++
	f.lastAddr = addr
	f.lastRegs = append([]uint16(nil), regs...)
	return nil
}

func TestDeliver_FullBlockAtSlotBase(t *testing.T) {
	cli := &fakeEndpointClient{}

	e, err := New(Config{DeviceName: "sda", Slot: 3}, cli)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	snap := status.Snapshot{Health: status.HealthIdle}
	if err := e.Deliver(snap); err != nil {
		t.Fatalf("Deliver err=%v", err)
	}

	if cli.lastAddr != 3*status.SlotsPerDevice {
		t.Fatalf("base addr: got=%d want=%d", cli.lastAddr, 3*status.SlotsPerDevice)
	}
	if len(cli.lastRegs) != status.SlotsPerDevice {
		t.Fatalf("expected full block write (%d regs), got %d",
			status.SlotsPerDevice, len(cli.lastRegs))
	}
	if cli.lastRegs[status.SlotHealthCode] != status.HealthIdle {
		t.Fatalf("health slot: got=%d", cli.lastRegs[status.SlotHealthCode])
	}
	if cli.lastRegs[status.SlotDeviceNameStart] != uint16('s')<<8|uint16('d') {
		t.Fatalf("name slot: got=%#x", cli.lastRegs[status.SlotDeviceNameStart])
	}
}

func TestDeliver_SkipsUnchangedSnapshot(t *testing.T) {
	cli := &fakeEndpointClient{}
	e, _ := New(Config{DeviceName: "sda", Slot: 0}, cli)

	snap := status.Snapshot{Health: status.HealthIdle}
	if err := e.Deliver(snap); err != nil {
		t.Fatalf("Deliver err=%v", err)
	}
	if err := e.Deliver(snap); err != nil {
		t.Fatalf("Deliver err=%v", err)
	}

	if cli.writes != 1 {
		t.Fatalf("unchanged snapshot must not re-write: writes=%d", cli.writes)
	}
}

func TestDeliver_WritesOnChange(t *testing.T) {
	cli := &fakeEndpointClient{}
	e, _ := New(Config{DeviceName: "sda", Slot: 0}, cli)

	if err := e.Deliver(status.Snapshot{Health: status.HealthIdle}); err != nil {
		t.Fatalf("Deliver err=%v", err)
	}
	if err := e.Deliver(status.Snapshot{Health: status.HealthRunning, RemainingPercent: 90}); err != nil {
		t.Fatalf("Deliver err=%v", err)
	}

	if cli.writes != 2 {
		t.Fatalf("changed snapshot must write: writes=%d", cli.writes)
	}
	if cli.lastRegs[status.SlotHealthCode] != status.HealthRunning {
		t.Fatalf("health slot: got=%d", cli.lastRegs[status.SlotHealthCode])
	}
}

func TestDeliver_ReassertsAfterFailure(t *testing.T) {
	cli := &fakeEndpointClient{fail: true}
	e, _ := New(Config{DeviceName: "sda", Slot: 0}, cli)

	snap := status.Snapshot{Health: status.HealthIdle}
	if err := e.Deliver(snap); err == nil {
		t.Fatalf("expected write failure")
	}

	// Same snapshot after a failure must still be written.
	cli.fail = false
	if err := e.Deliver(snap); err != nil {
		t.Fatalf("re-assert failed: %v", err)
	}
	if cli.writes != 1 {
		t.Fatalf("expected re-assert write, writes=%d", cli.writes)
	}
}
