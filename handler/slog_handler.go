package handler

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/philipp01105/logcat/core"
)

// LevelTrace is the slog level mapped to core.TraceLevel. Any slog level
// at or below it is treated as trace.
const LevelTrace = slog.LevelDebug - 4

// SlogHandler is an adapter that implements slog.Handler on top of a Handler,
// so code written against log/slog can log to any sink in this module.
type SlogHandler struct {
	handler Handler
	level   core.Level
	target  string
	attrs   []core.Field
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
// Records below level are discarded.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// WithTarget returns a copy of the handler that tags every record with
// target instead of deriving it from the calling package.
func (s *SlogHandler) WithTarget(target string) *SlogHandler {
	c := *s
	c.target = target
	return &c
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	l := slogLevelToCore(level)
	return l >= s.level && s.handler.Enabled(core.Metadata{Level: l, Target: s.target})
}

// Handle processes a slog.Record by converting it to a core.Entry and passing it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = record.Message
	entry.Target = s.target
	if entry.Target == "" && record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		entry.Target = core.PackageOf(frame.Function)
		entry.Caller = core.CallerInfo{
			File:     frame.File,
			Line:     frame.Line,
			Function: frame.Function,
			Defined:  true,
		}
	}

	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}

	record.Attrs(func(a slog.Attr) bool {
		entry.Fields = appendSlogAttr(entry.Fields, s.group, a)
		return true
	})

	return s.handler.Handle(entry)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendSlogAttr(newAttrs, s.group, a)
	}
	c := *s
	c.attrs = newAttrs
	return &c
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	c := *s
	c.group = name
	if s.group != "" {
		c.group = s.group + "." + name
	}
	return &c
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level > LevelTrace:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendSlogAttr converts a slog.Attr to fields, prepending the group prefix
// if present. Group attrs are flattened.
func appendSlogAttr(dst []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + a.Key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return append(dst, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(dst, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(dst, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Uint64()})
	case slog.KindFloat64:
		return append(dst, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return append(dst, core.Field{Key: key, Type: core.BoolType, Int64: val})
	case slog.KindTime:
		return append(dst, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(dst, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			dst = appendSlogAttr(dst, key, ga)
		}
		return dst
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(dst, core.Field{Key: key, Type: core.ErrorType, Str: err.Error()})
		}
		return append(dst, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}
