package core

import "strings"

// Level represents the severity level of a log entry.
// Levels are totally ordered: TraceLevel < DebugLevel < InfoLevel < WarnLevel < ErrorLevel.
type Level int8

const (
	// TraceLevel for very verbose diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// Levels lists every level from least to most severe.
var Levels = [...]Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= ErrorLevel
}

// ParseLevel converts a string to a Level. The second return value is false
// if s names no level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE", "VERBOSE":
		return TraceLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	default:
		return InfoLevel, false
	}
}

// LevelFilter is a severity threshold. A filter enables every level at or
// above the level it names; OffFilter enables nothing.
type LevelFilter int8

const (
	// OffFilter disables all logging
	OffFilter LevelFilter = iota
	// ErrorFilter enables Error only
	ErrorFilter
	// WarnFilter enables Warn and Error
	WarnFilter
	// InfoFilter enables Info and above
	InfoFilter
	// DebugFilter enables Debug and above
	DebugFilter
	// TraceFilter enables everything
	TraceFilter
)

// LevelFilterMax is the most permissive filter.
const LevelFilterMax = TraceFilter

// FilterFor returns the filter whose lowest enabled level is l.
func FilterFor(l Level) LevelFilter {
	if !l.Valid() {
		return OffFilter
	}
	return LevelFilter(ErrorLevel-l) + ErrorFilter
}

// Enables reports whether a record at level l passes the filter.
func (f LevelFilter) Enables(l Level) bool {
	return l.Valid() && FilterFor(l) <= f
}

// String returns the string representation of the filter
func (f LevelFilter) String() string {
	switch f {
	case OffFilter:
		return "OFF"
	case ErrorFilter:
		return "ERROR"
	case WarnFilter:
		return "WARN"
	case InfoFilter:
		return "INFO"
	case DebugFilter:
		return "DEBUG"
	case TraceFilter:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevelFilter converts a string to a LevelFilter. "off" and "none"
// map to OffFilter; level names map to the filter starting at that level.
func ParseLevelFilter(s string) (LevelFilter, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OFF", "NONE":
		return OffFilter, true
	}
	l, ok := ParseLevel(s)
	if !ok {
		return LevelFilterMax, false
	}
	return FilterFor(l), true
}
