// Package events publishes lifecycle and ringing-session changes to observers.
//
// The Bus is an in-memory watermill gochannel pub/sub on a single topic.
// Subscribers acknowledge on receipt and buffer locally, so a subscriber that
// does not keep up loses events rather than stalling the alarm engine.
package events
