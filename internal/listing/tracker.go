package listing

import (
	"context"
	"sync"
)

// Tracker keeps at most one live request per key. Starting a request cancels
// the previous one for the same key, so a slow stale response can never land
// after a newer one.
type Tracker struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[string]Ticket
}

// Ticket identifies one tracked request.
type Ticket struct {
	key    string
	id     uint64
	cancel context.CancelFunc
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{inflight: make(map[string]Ticket)}
}

// Begin registers a new request for key and cancels any earlier one.
// The returned context is cancelled when the request is superseded or ended.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, Ticket) {
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.inflight[key]; ok {
		prev.cancel()
	}
	t.seq++
	tk := Ticket{key: key, id: t.seq, cancel: cancel}
	t.inflight[key] = tk
	return ctx, tk
}

// Current reports whether tk is still the latest request for its key.
func (t *Tracker) Current(tk Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	cur, ok := t.inflight[tk.key]
	return ok && cur.id == tk.id
}

// End releases tk. Ending a superseded ticket leaves the newer one untouched.
func (t *Tracker) End(tk Ticket) {
	tk.cancel()

	t.mu.Lock()
	defer t.mu.Unlock()
	if cur, ok := t.inflight[tk.key]; ok && cur.id == tk.id {
		delete(t.inflight, tk.key)
	}
}

// Cancel aborts whatever request is live for key, e.g. when its session ends.
func (t *Tracker) Cancel(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cur, ok := t.inflight[key]; ok {
		cur.cancel()
		delete(t.inflight, key)
	}
}

// Len returns the number of live requests.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inflight)
}
