// Package timer implements the in-process timer gateway.
//
// The Gateway arms at most one one-shot timer per schedule id. Every arming
// gets a fresh version; a callback whose version no longer matches (because
// the id was re-armed or cancelled meanwhile) is dropped, so Cancel reliably
// invalidates an arming even if its timer is already running.
package timer
