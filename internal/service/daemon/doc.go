// Package daemon runs interval-alarmd.
//
// Run loads the settings, opens schedule storage, seeds the default schedule
// into empty storage, re-arms every enabled schedule and serves the gRPC API
// until the context is canceled. Timers fire into ringing sessions, which
// re-arm the following occurrence on their own.
package daemon
