// Package debug provides verbose logging that is off unless -debug is passed
package debug

import "log"

// Enabled controls whether verbose per-frame logging is active
var Enabled bool

// Log prints a message only if debug mode is enabled
func Log(format string, args ...any) {
	if Enabled {
		log.Printf(format, args...)
	}
}
