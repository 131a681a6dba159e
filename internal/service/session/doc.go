// Package session runs ringing sessions.
//
// A fire event starts a session for the schedule, asks the presenter to show
// it and, when the schedule has an auto-dismiss duration, starts a countdown.
// The following occurrence is re-armed in parallel, independent of how long
// the session rings. A session ends exactly once: by Dismiss, by the countdown,
// or by Close.
package session
