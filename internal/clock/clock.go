package clock

import "time"

// Clock supplies the current local time and delayed callbacks.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time
	// AfterFunc waits for d and then calls f in its own goroutine (Real) or
	// synchronously from Advance (Fake).
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// Real implements Clock with the time package.
type Real struct{}

// NewReal creates a clock backed by the system time.
func NewReal() *Real {
	return &Real{}
}

// Now returns time.Now in the local location.
func (*Real) Now() time.Time {
	return time.Now()
}

// AfterFunc wraps time.AfterFunc.
//
//nolint:ireturn // Timer is the abstraction.
func (*Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
