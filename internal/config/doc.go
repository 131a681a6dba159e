// Package config defines the settings used by interval-alarmd and intervalctl
// and provides helpers to load, validate and save them in YAML format.
//
// Validate fills in defaults: a 5s call timeout, the "info" log level and
// file storage in interval-alarm-schedules.json.
package config
