package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually driven Clock for tests.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers map[uint64]*fakeTimer
}

// fakeTimer is a pending callback registered on a Fake clock.
type fakeTimer struct {
	clock *Fake
	id    uint64
	at    time.Time
	fn    func()
}

// NewFake creates a fake clock set to now.
func NewFake(now time.Time) *Fake {
	return &Fake{
		now:    now,
		timers: make(map[uint64]*fakeTimer),
	}
}

// Now returns the fake time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// AfterFunc registers f to run once the fake time reaches now+d.
// A non-positive d runs on the next Advance or Set, even by zero.
//
//nolint:ireturn // Timer is the abstraction.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{
		clock: f,
		id:    f.seq,
		at:    f.now.Add(d),
		fn:    fn,
	}
	f.timers[t.id] = t

	return t
}

// Advance moves the time forward by d and runs every callback that became due, in order.
func (f *Fake) Advance(d time.Duration) {
	f.Set(f.Now().Add(d))
}

// Set moves the time to now and runs every callback that became due, in order.
// Callbacks run on the calling goroutine without the clock lock held, so they
// may call back into the clock.
func (f *Fake) Set(now time.Time) {
	f.mu.Lock()
	f.now = now
	due := make([]*fakeTimer, 0, len(f.timers))

	for id, t := range f.timers {
		if !t.at.After(now) {
			due = append(due, t)
			delete(f.timers, id)
		}
	}
	f.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].id < due[j].id
		}

		return due[i].at.Before(due[j].at)
	})

	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of callbacks that have not run or been stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.timers)
}

// Stop removes the callback if it is still pending.
func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if _, ok := t.clock.timers[t.id]; !ok {
		return false
	}

	delete(t.clock.timers, t.id)

	return true
}
