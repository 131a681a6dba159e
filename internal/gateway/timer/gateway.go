package timer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oshokin/interval-alarm/internal/clock"
)

var (
	// ErrPermissionDenied is returned when the gateway refuses to arm a timer.
	ErrPermissionDenied = errors.New("permission to arm timer denied")
	// ErrClosed is returned by Arm after Close.
	ErrClosed = errors.New("timer gateway closed")
)

// FireFunc receives the id of a schedule whose timer went off.
type FireFunc func(id int64)

// Option configures the gateway.
type Option func(*Gateway)

// WithMaxArmed limits how many ids may hold a timer at once. Arming a new id
// beyond the limit fails with ErrPermissionDenied; re-arming an id that
// already holds a timer is always allowed. Zero means no limit.
func WithMaxArmed(limit int) Option {
	return func(g *Gateway) {
		if limit > 0 {
			g.maxArmed = limit
		}
	}
}

// arming is the currently armed timer of one id.
type arming struct {
	// at is the absolute instant the timer was armed for.
	at time.Time
	// version identifies this arming among all armings of the gateway.
	version uint64
	// timer is the pending clock callback.
	timer clock.Timer
}

// Gateway arms and cancels one-shot timers keyed by schedule id.
type Gateway struct {
	// clock schedules the callbacks.
	clock clock.Clock
	// onFire is called after a live arming goes off.
	onFire FireFunc
	// maxArmed caps the number of concurrently armed ids (0 = unlimited).
	maxArmed int

	// mu protects everything below.
	mu sync.Mutex
	// seq is the last issued arming version.
	seq uint64
	// armed maps schedule ids to their live arming.
	armed map[int64]*arming
	// closed rejects new armings after Close.
	closed bool
}

// New creates a gateway that calls onFire when an armed instant is reached.
func New(clk clock.Clock, onFire FireFunc, opts ...Option) *Gateway {
	g := &Gateway{
		clock:  clk,
		onFire: onFire,
		armed:  make(map[int64]*arming),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Arm sets the timer of id to at, replacing any previous arming of id.
// Instants in the past fire immediately.
func (g *Gateway) Arm(_ context.Context, id int64, at time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrClosed
	}

	previous, exists := g.armed[id]
	if !exists && g.maxArmed > 0 && len(g.armed) >= g.maxArmed {
		return ErrPermissionDenied
	}

	if exists {
		previous.timer.Stop()
	}

	g.seq++
	version := g.seq

	delay := max(at.Sub(g.clock.Now()), 0)

	g.armed[id] = &arming{
		at:      at,
		version: version,
		timer: g.clock.AfterFunc(delay, func() {
			g.fire(id, version)
		}),
	}

	return nil
}

// Cancel drops the arming of id. Cancelling an id without a timer is a no-op.
func (g *Gateway) Cancel(_ context.Context, id int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if current, ok := g.armed[id]; ok {
		current.timer.Stop()
		delete(g.armed, id)
	}

	return nil
}

// ArmedAt returns the instant id is armed for.
func (g *Gateway) ArmedAt(id int64) (time.Time, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	current, ok := g.armed[id]
	if !ok {
		return time.Time{}, false
	}

	return current.at, true
}

// Snapshot returns every armed id with its instant.
func (g *Gateway) Snapshot() map[int64]time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()

	result := make(map[int64]time.Time, len(g.armed))
	for id, current := range g.armed {
		result[id] = current.at
	}

	return result
}

// Close stops every pending timer and rejects further armings.
func (g *Gateway) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id, current := range g.armed {
		current.timer.Stop()
		delete(g.armed, id)
	}

	g.closed = true
}

// fire delivers the callback of an arming unless it was replaced or cancelled.
func (g *Gateway) fire(id int64, version uint64) {
	g.mu.Lock()

	current, ok := g.armed[id]
	if !ok || current.version != version {
		g.mu.Unlock()
		return
	}

	// Timers count elapsed time. If the wall clock was stepped back since
	// arming, the instant is still ahead: wait for the rest.
	if remaining := current.at.Sub(g.clock.Now()); remaining > 0 {
		current.timer = g.clock.AfterFunc(remaining, func() {
			g.fire(id, version)
		})
		g.mu.Unlock()

		return
	}

	delete(g.armed, id)
	g.mu.Unlock()

	if g.onFire != nil {
		g.onFire(id)
	}
}
