package logger

import (
	"github.com/philipp01105/logcat/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// LevelFilter re-exports core.LevelFilter
type LevelFilter = core.LevelFilter

// ParseLevel converts a string to a Level, defaulting to InfoLevel for
// unknown names.
func ParseLevel(s string) Level {
	l, _ := core.ParseLevel(s)
	return l
}

// ParseLevelFilter converts a string such as "warn" or "off" to a filter,
// defaulting to core.LevelFilterMax for unknown names.
func ParseLevelFilter(s string) LevelFilter {
	f, _ := core.ParseLevelFilter(s)
	return f
}
