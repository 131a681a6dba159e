// Package ctl implements the intervalctl commands on top of the daemon's gRPC API.
package ctl
