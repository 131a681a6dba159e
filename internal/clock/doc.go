// Package clock abstracts the current time and one-shot timers.
//
// Production code uses Real; tests inject Fake, whose time only moves when
// the test calls Advance or Set, firing due AfterFunc callbacks synchronously.
package clock
