// Package desktop rings alarms through the notification tool of the operating system.
package desktop
