// Package logger holds the process-wide zap logger.
//
// The logger travels in a context.Context: services name it with WithName,
// attach fields with WithKV and write through the package-level helpers such
// as InfoKV, which fall back to the global logger when the context has none.
// Output goes to stderr so that intervalctl keeps stdout for its tables.
package logger
