// internal/poller/poller.go
package poller

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/zeebo/blake3"

	"github.com/mfilippov/selftest-monitor/internal/report"
	"github.com/mfilippov/selftest-monitor/internal/selftest"
)

// Client abstracts the report source for one poll cycle.
// The poller depends on snapshots only; how they are produced (smartctl,
// fixture files) is the client's business.
type Client interface {
	SMARTData(ctx context.Context, device string) (report.Document, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Device       string
	Interval     time.Duration
	OnChangeOnly bool
}

// Poller re-invokes the extractor on a fixed cadence.
// The extraction core stays stateless; cadence and change tracking live
// here.
type Poller struct {
	cfg    Config
	client Client
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if cfg.Device == "" {
		return nil, errors.New("poller: device required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	return &Poller{cfg: cfg, client: client}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: a failed fetch or extraction yields a result with Err set
// and no self-test value.
func (p *Poller) PollOnce(ctx context.Context) PollResult {
	res := PollResult{
		ID:     ulid.Make().String(),
		Device: p.cfg.Device,
		At:     time.Now(),
	}

	data, err := p.client.SMARTData(ctx, p.cfg.Device)
	if err != nil {
		res.Err = err
		return res
	}

	st, err := selftest.FromSMARTData(data)
	if err != nil {
		res.Err = err
		return res
	}

	res.SelfTest = st
	res.Digest = digest(st)
	return res
}

// digest hashes the canonical encoding of a self-test value.
// Struct field order makes the encoding deterministic.
func digest(st *selftest.SelfTest) [32]byte {
	b, err := json.Marshal(st)
	if err != nil {
		return [32]byte{}
	}
	return blake3.Sum256(b)
}
