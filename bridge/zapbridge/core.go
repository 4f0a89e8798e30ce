// Package zapbridge provides a zapcore.Core that forwards zap entries to
// a handler.Handler, so zap loggers can share the facade's sink.
package zapbridge

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logcat/core"
	"github.com/philipp01105/logcat/handler"
)

// DefaultTarget is used when an entry has no logger name, no configured
// target and no caller.
const DefaultTarget = "zap"

// Config holds configuration for the bridge core.
type Config struct {
	// Target overrides the caller package for unnamed loggers.
	Target string
	// Level decides which zap levels are forwarded (default: all).
	Level zapcore.LevelEnabler
}

func applyDefaults(cfg *Config) {
	if cfg.Level == nil {
		cfg.Level = zap.LevelEnablerFunc(func(zapcore.Level) bool { return true })
	}
}

// Core implements zapcore.Core on top of a handler.Handler.
type Core struct {
	handler handler.Handler
	target  string
	level   zapcore.LevelEnabler
	fields  []zapcore.Field
}

var _ zapcore.Core = (*Core)(nil)

// New creates a bridge core.
func New(h handler.Handler, cfg Config) *Core {
	applyDefaults(&cfg)
	return &Core{
		handler: h,
		target:  cfg.Target,
		level:   cfg.Level,
	}
}

// Enabled reports whether lvl passes the configured level enabler.
func (c *Core) Enabled(lvl zapcore.Level) bool {
	return c.level.Enabled(lvl)
}

// With returns a core that adds fields to every entry.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

// Check adds the core when both zap and the handler accept the entry.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}
	md := core.Metadata{Level: levelOf(ent.Level), Target: c.targetOf(ent)}
	if !c.handler.Enabled(md) {
		return ce
	}
	return ce.AddCore(ent, c)
}

// Write converts the entry and hands it to the handler.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = ent.Time
	entry.Level = levelOf(ent.Level)
	entry.Target = c.targetOf(ent)
	entry.Message = ent.Message
	if ent.Caller.Defined {
		entry.Caller = core.CallerInfo{
			File:      ent.Caller.File,
			ShortFile: filepath.Base(ent.Caller.File),
			Line:      ent.Caller.Line,
			Function:  ent.Caller.Function,
			Defined:   true,
		}
	}

	if len(c.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		entry.Fields = core.AppendMap(entry.Fields, enc.Fields)
		for i := range entry.Fields {
			if entry.Fields[i].Key == "error" && entry.Fields[i].Type == core.StringType {
				entry.Fields[i].Type = core.ErrorType
			}
		}
	}

	return c.handler.Handle(entry)
}

// Sync does nothing; handlers write synchronously.
func (c *Core) Sync() error {
	return nil
}

func (c *Core) targetOf(ent zapcore.Entry) string {
	switch {
	case ent.LoggerName != "":
		return ent.LoggerName
	case c.target != "":
		return c.target
	case ent.Caller.Defined && ent.Caller.Function != "":
		return core.PackageOf(ent.Caller.Function)
	default:
		return DefaultTarget
	}
}

// levelOf maps zap levels onto core levels. Anything below Debug is
// Trace; DPanic, Panic and Fatal are Error.
func levelOf(l zapcore.Level) core.Level {
	switch {
	case l < zapcore.DebugLevel:
		return core.TraceLevel
	case l == zapcore.DebugLevel:
		return core.DebugLevel
	case l == zapcore.InfoLevel:
		return core.InfoLevel
	case l == zapcore.WarnLevel:
		return core.WarnLevel
	default:
		return core.ErrorLevel
	}
}
