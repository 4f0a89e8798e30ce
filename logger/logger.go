package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/logcat/core"
	"github.com/philipp01105/logcat/handler"
)

// defaultCallerSkip makes core.GetCaller inside log report the caller of
// a Logger method.
const defaultCallerSkip = 2

// Logger is the front end of the facade (immutable)
type Logger struct {
	handler       handler.Handler // nil means the process-wide sink
	level         core.Level
	target        string
	fields        []core.Field
	includeCaller bool
	coarseClock   bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	target        string
	fields        []core.Field
	includeCaller bool
	coarseClock   bool
}

// NewBuilder creates a new logger builder. Without WithHandler the built
// Logger sends to the process-wide sink; the default level is TraceLevel,
// leaving filtering to the global maximum level.
func NewBuilder() *Builder {
	return &Builder{
		level: core.TraceLevel,
	}
}

// WithHandler sets an explicit handler, bypassing the process-wide sink
// and the global maximum level.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the least severe level the Logger emits
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithTarget sets a fixed target instead of the calling package
func (b *Builder) WithTarget(target string) *Builder {
	b.target = target
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCoarseClock timestamps entries from core.CoarseNow, which is updated
// every 500µs by a background goroutine, instead of calling time.Now.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	if enabled {
		core.StartCoarseClock()
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	fields := make([]core.Field, len(b.fields))
	copy(fields, b.fields)
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		target:        b.target,
		fields:        fields,
		includeCaller: b.includeCaller,
		coarseClock:   b.coarseClock,
		callerSkip:    defaultCallerSkip,
	}
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	c := *l
	c.fields = newFields
	return &c
}

// WithTarget creates a new Logger that tags entries with target
func (l *Logger) WithTarget(target string) *Logger {
	c := *l
	c.target = target
	return &c
}

// sinkFor returns the handler a record at level goes to, or false if the
// record is filtered out.
func (l *Logger) sinkFor(level core.Level) (handler.Handler, bool) {
	if level < l.level || !level.Valid() {
		return nil, false
	}
	if l.handler != nil {
		return l.handler, true
	}
	if !MaxLevel().Enables(level) {
		return nil, false
	}
	h, ok := Installed()
	return h, ok
}

// Enabled reports whether a record at level would be passed to a sink,
// assuming the sink accepts the target.
func (l *Logger) Enabled(level core.Level) bool {
	_, ok := l.sinkFor(level)
	return ok
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	l.log(level, fields, msg, nil, false)
}

// Logf logs a formatted message at the specified level
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	l.log(level, nil, format, args, true)
}

// log builds an entry and hands it to the sink. With sprintf set, msg is a
// format string rendered only after the sink has accepted the entry's
// metadata. Handler errors are dropped: no caller is waiting for them.
func (l *Logger) log(level core.Level, fields []core.Field, msg string, args []interface{}, sprintf bool) {
	h, ok := l.sinkFor(level)
	if !ok {
		return
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)

	if l.coarseClock {
		entry.Time = core.CoarseNow()
	} else {
		entry.Time = time.Now()
	}
	entry.Level = level
	entry.Target = l.target

	if l.includeCaller || entry.Target == "" {
		caller := core.GetCaller(l.callerSkip)
		if l.includeCaller {
			entry.Caller = caller
		}
		if entry.Target == "" {
			entry.Target = caller.Package()
		}
	}

	if !h.Enabled(entry.Metadata()) {
		return
	}

	if sprintf {
		entry.Message = fmt.Sprintf(msg, args...)
	} else {
		entry.Message = msg
	}

	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	_ = h.Handle(entry)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	l.log(core.TraceLevel, fields, msg, nil, false)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.log(core.DebugLevel, fields, msg, nil, false)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	l.log(core.InfoLevel, fields, msg, nil, false)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	l.log(core.WarnLevel, fields, msg, nil, false)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.log(core.ErrorLevel, fields, msg, nil, false)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(core.TraceLevel, nil, format, args, true)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(core.DebugLevel, nil, format, args, true)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(core.InfoLevel, nil, format, args, true)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(core.WarnLevel, nil, format, args, true)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(core.ErrorLevel, nil, format, args, true)
}

// Close closes the logger's own handler. The process-wide sink is never
// closed through a Logger.
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
