// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run starts the ticker loop and emits PollResult on the provided channel.
// One goroutine per device. No overlap. No retries.
//
// With OnChangeOnly set, a success whose digest matches the previously
// emitted success is dropped. Errors always emit, and the first success
// after an error always emits.
func (p *Poller) Run(ctx context.Context, out chan<- PollResult) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	var last [32]byte
	var have bool

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res := p.PollOnce(ctx)
			if res.Err == nil {
				if p.cfg.OnChangeOnly && have && res.Digest == last {
					continue
				}
				last = res.Digest
				have = true
			} else {
				// An emitted error invalidates change tracking: the
				// first success after an error must emit even when its
				// digest matches the last pre-error success.
				have = false
			}
			out <- res
		}
	}
}
