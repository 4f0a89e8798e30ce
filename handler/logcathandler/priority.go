package logcathandler

import (
	"strconv"

	"github.com/philipp01105/logcat/core"
)

// Priority is an Android log priority (android_LogPriority).
type Priority int32

const (
	PriorityUnknown Priority = iota
	PriorityDefault
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityFatal
	PrioritySilent
)

var priorityNames = [...]string{
	PriorityUnknown: "UNKNOWN",
	PriorityDefault: "DEFAULT",
	PriorityVerbose: "VERBOSE",
	PriorityDebug:   "DEBUG",
	PriorityInfo:    "INFO",
	PriorityWarn:    "WARN",
	PriorityError:   "ERROR",
	PriorityFatal:   "FATAL",
	PrioritySilent:  "SILENT",
}

// String returns the priority name, e.g. "WARN".
func (p Priority) String() string {
	if p >= 0 && int(p) < len(priorityNames) {
		return priorityNames[p]
	}
	return "Priority(" + strconv.Itoa(int(p)) + ")"
}

// Letter returns the single-letter code logcat prints for the priority.
func (p Priority) Letter() byte {
	switch p {
	case PriorityVerbose:
		return 'V'
	case PriorityDebug:
		return 'D'
	case PriorityInfo:
		return 'I'
	case PriorityWarn:
		return 'W'
	case PriorityError:
		return 'E'
	case PriorityFatal:
		return 'F'
	case PrioritySilent:
		return 'S'
	default:
		return '?'
	}
}

// levelPriorities is indexed by core.Level.
var levelPriorities = [...]Priority{
	core.TraceLevel: PriorityVerbose,
	core.DebugLevel: PriorityDebug,
	core.InfoLevel:  PriorityInfo,
	core.WarnLevel:  PriorityWarn,
	core.ErrorLevel: PriorityError,
}

// PriorityFor maps a facade level to its Android priority. Levels outside
// the five defined ones map to PriorityDefault.
func PriorityFor(level core.Level) Priority {
	if !level.Valid() {
		return PriorityDefault
	}
	return levelPriorities[level]
}
