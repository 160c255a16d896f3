// Package logging adds a debug switch on top of the standard logger.
package logging

import "log"

var debugEnabled bool

// SetDebug controls whether calls to Debugf emit output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// DebugEnabled reports whether Debugf emits output.
func DebugEnabled() bool {
	return debugEnabled
}

// Debugf logs a formatted message when debug is enabled.
func Debugf(format string, v ...any) {
	if debugEnabled {
		log.Printf(format, v...)
	}
}
