// internal/poller/poller_test.go
package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mfilippov/selftest-monitor/internal/report"
)

type fakeClient struct {
	doc report.Document
	err error
}

func (f *fakeClient) SMARTData(ctx context.Context, device string) (report.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func smartData(value int, remaining int) report.Document {
	status := map[string]any{
		"value":  value,
		"string": "stub",
	}
	if remaining >= 0 {
		status["remaining_percent"] = remaining
	}
	return report.Document{
		"self_test": map[string]any{
			"status":          status,
			"polling_minutes": map[string]any{"short": 2},
		},
	}
}

func newPoller(t *testing.T, client Client) *Poller {
	t.Helper()
	p, err := New(Config{Device: "/dev/sda", Interval: time.Second}, client)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	return p
}

func TestPollOnce_Success(t *testing.T) {
	p := newPoller(t, &fakeClient{doc: smartData(0, -1)})

	res := p.PollOnce(context.Background())
	if res.Err != nil {
		t.Fatalf("PollOnce err=%v", res.Err)
	}
	if res.SelfTest == nil {
		t.Fatalf("expected self-test value")
	}
	if res.SelfTest.IsRunning() {
		t.Fatalf("value=0 must not report running")
	}
	if res.ID == "" {
		t.Fatalf("expected result id")
	}
	if res.Digest == ([32]byte{}) {
		t.Fatalf("expected digest")
	}
}

func TestPollOnce_FetchFailure(t *testing.T) {
	p := newPoller(t, &fakeClient{err: errors.New("device gone")})

	res := p.PollOnce(context.Background())
	if res.Err == nil {
		t.Fatalf("expected error, got nil")
	}
	if res.SelfTest != nil {
		t.Fatalf("failed cycle must not carry a self-test value")
	}
}

func TestPollOnce_ExtractFailure(t *testing.T) {
	p := newPoller(t, &fakeClient{doc: report.Document{"capabilities": map[string]any{}}})

	res := p.PollOnce(context.Background())
	if res.Err == nil {
		t.Fatalf("expected extraction error, got nil")
	}
	if res.SelfTest != nil {
		t.Fatalf("failed cycle must not carry a self-test value")
	}
}

func TestDigest_StableForEqualSnapshots(t *testing.T) {
	p := newPoller(t, &fakeClient{doc: smartData(249, 90)})

	a := p.PollOnce(context.Background())
	b := p.PollOnce(context.Background())

	if a.Err != nil || b.Err != nil {
		t.Fatalf("unexpected errors: %v %v", a.Err, b.Err)
	}
	if a.Digest != b.Digest {
		t.Fatalf("equal snapshots must produce equal digests")
	}
	if a.ID == b.ID {
		t.Fatalf("result ids must be unique")
	}
}

func TestDigest_ChangesWithSnapshot(t *testing.T) {
	cli := &fakeClient{doc: smartData(249, 90)}
	p := newPoller(t, cli)

	a := p.PollOnce(context.Background())
	cli.doc = smartData(249, 80)
	b := p.PollOnce(context.Background())

	if a.Digest == b.Digest {
		t.Fatalf("different snapshots must produce different digests")
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{Interval: time.Second}, &fakeClient{}); err == nil {
		t.Fatalf("expected error for empty device")
	}
	if _, err := New(Config{Device: "/dev/sda"}, &fakeClient{}); err == nil {
		t.Fatalf("expected error for zero interval")
	}
	if _, err := New(Config{Device: "/dev/sda", Interval: time.Second}, nil); err == nil {
		t.Fatalf("expected error for nil client")
	}
}
