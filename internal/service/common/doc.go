// Package common holds helpers shared by the daemon and the CLI.
//
// It provides a gRPC client wrapper with call timeouts, detection of the
// current system actor (username@hostname) and the server interceptors that
// put the actor into the request logger for the audit trail.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
