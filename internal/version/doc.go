// Package version exposes build metadata and the `version` subcommand shared
// by interval-alarmd and intervalctl.
//
// Version, Commit and BuildTime are injected with -ldflags; without them the
// commit comes from the VCS stamp that `go build` embeds.
package version
