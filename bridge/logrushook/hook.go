// Package logrushook forwards logrus entries to a handler.Handler, so
// code logging with logrus ends up in the same sink as the facade, e.g.
// the Android log buffer:
//
//	h, _ := logcathandler.New("MyApp")
//	logrus.AddHook(logrushook.New(h))
//	logrus.SetOutput(io.Discard)
package logrushook

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/logcat/core"
	"github.com/philipp01105/logcat/handler"
)

// DefaultTarget is used when neither a target nor caller information is
// available.
const DefaultTarget = "logrus"

// Hook is a logrus.Hook writing to a handler.Handler.
type Hook struct {
	handler handler.Handler
	target  string
	levels  []logrus.Level
}

// New creates a hook for all logrus levels.
func New(h handler.Handler) *Hook {
	return &Hook{
		handler: h,
		levels:  logrus.AllLevels,
	}
}

// WithTarget returns a copy of the hook that tags every entry with target.
// Without it the target is the package of the logrus caller when
// ReportCaller is on, and DefaultTarget otherwise.
func (h *Hook) WithTarget(target string) *Hook {
	c := *h
	c.target = target
	return &c
}

// WithLevels returns a copy of the hook that only fires for levels.
func (h *Hook) WithLevels(levels ...logrus.Level) *Hook {
	c := *h
	c.levels = levels
	return &c
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook.
func (h *Hook) Fire(e *logrus.Entry) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = e.Time
	entry.Level = levelOf(e.Level)
	entry.Message = e.Message
	entry.Target = h.target
	if e.Caller != nil {
		entry.Caller = core.CallerInfo{
			File:      e.Caller.File,
			ShortFile: filepath.Base(e.Caller.File),
			Line:      e.Caller.Line,
			Function:  e.Caller.Function,
			Defined:   true,
		}
		if entry.Target == "" {
			entry.Target = core.PackageOf(e.Caller.Function)
		}
	}
	if entry.Target == "" {
		entry.Target = DefaultTarget
	}

	if !h.handler.Enabled(entry.Metadata()) {
		return nil
	}
	entry.Fields = core.AppendMap(entry.Fields, e.Data)
	return h.handler.Handle(entry)
}

// levelOf maps logrus levels onto core levels; Panic and Fatal become
// Error.
func levelOf(l logrus.Level) core.Level {
	switch l {
	case logrus.TraceLevel:
		return core.TraceLevel
	case logrus.DebugLevel:
		return core.DebugLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	default:
		return core.ErrorLevel
	}
}
