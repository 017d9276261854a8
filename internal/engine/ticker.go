package engine

import (
	"context"
	"time"
)

// Ticker drives the live countdown. It fires on a coarse interval but
// converts the wall-clock delta between firings into individual one-second
// tick actions, carrying the sub-second remainder into the next delta so an
// uneven timer cadence (or a suspended process) never loses or gains
// seconds. Each virtual tick is stamped with its own second.
type Ticker struct {
	store    *Store
	clock    Clock
	interval time.Duration

	last  time.Time
	carry time.Duration
}

func NewTicker(store *Store, clock Clock, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{store: store, clock: clock, interval: interval}
}

// Run blocks until ctx is done, dispatching tick actions as wall-clock
// seconds elapse.
func (t *Ticker) Run(ctx context.Context) {
	t.last = t.clock.Now()
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.fire(t.clock.Now())
		}
	}
}

// fire replays whole seconds between the previous firing and now.
func (t *Ticker) fire(now time.Time) {
	delta := now.Sub(t.last) + t.carry
	if delta < 0 {
		// Clock went backward; re-anchor and wait for it to catch up.
		t.last = now
		t.carry = 0
		return
	}

	ticks := int(delta / time.Second)
	t.carry = delta % time.Second
	t.last = now

	at := now.Add(-delta + t.carry)
	for i := 0; i < ticks; i++ {
		at = at.Add(time.Second)
		t.store.Dispatch(Tick(at))
	}
}
