// Package lifecycle arms and disarms schedules.
//
// Every operation on a schedule id runs under a lock held for that id only,
// re-reads the schedule from storage and derives the next occurrence from the
// current time. Disable and Delete cancel the gateway timer before the lock is
// released, so a fire that was already in flight finds the schedule disabled
// (or gone) and is ignored instead of re-arming it.
package lifecycle
