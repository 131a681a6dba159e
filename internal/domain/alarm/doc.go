// Package alarm contains core domain types for the interval alarm.
//
// It defines Schedule (a daily window, a firing interval and a set of active
// weekdays), the Weekdays set, the lifecycle and ringing-session states, and
// NextOccurrence, the pure function that decides the next instant a schedule
// should fire. Clone helpers keep callers from sharing internal references.
package alarm
