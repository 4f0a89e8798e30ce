// Package zerologbridge lets zerolog loggers write into a handler.Handler.
// Each zerolog event is decoded back into a core.Entry:
//
//	h, _ := logcathandler.New("MyApp")
//	log := zerolog.New(zerologbridge.New(h, zerologbridge.Config{}))
//	log.Warn().Str("target", "core::net").Msg("retrying connection")
package zerologbridge

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/philipp01105/logcat/core"
	"github.com/philipp01105/logcat/handler"
)

// Config holds configuration for the bridge writer.
type Config struct {
	// TargetField is the event field holding the record target
	// (default: "target"). It is removed from the forwarded fields.
	TargetField string
	// Target is used for events without a TargetField (default: "zerolog").
	Target string
}

func applyDefaults(cfg *Config) {
	if cfg.TargetField == "" {
		cfg.TargetField = "target"
	}
	if cfg.Target == "" {
		cfg.Target = "zerolog"
	}
}

// Writer is a zerolog.LevelWriter forwarding events to a handler.
type Writer struct {
	handler handler.Handler
	cfg     Config
}

var _ zerolog.LevelWriter = (*Writer)(nil)

// New creates a bridge writer.
func New(h handler.Handler, cfg Config) *Writer {
	applyDefaults(&cfg)
	return &Writer{handler: h, cfg: cfg}
}

// Write forwards an event whose level is read from the event itself.
func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel forwards one JSON encoded event. Input that is not a JSON
// object is forwarded verbatim as the message. It always reports len(p)
// written so zerolog does not retry; handler errors are returned.
func (w *Writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	fields, ok := decode(p)
	if !ok {
		entry.Level = levelOf(level)
		entry.Target = w.cfg.Target
		entry.Message = string(bytes.TrimRight(p, "\r\n"))
		return len(p), w.handle(entry)
	}

	if level == zerolog.NoLevel {
		if s, ok := fields[zerolog.LevelFieldName].(string); ok {
			if parsed, err := zerolog.ParseLevel(s); err == nil {
				level = parsed
			}
		}
	}
	if level == zerolog.Disabled {
		return len(p), nil
	}
	delete(fields, zerolog.LevelFieldName)

	entry.Level = levelOf(level)
	entry.Target = w.cfg.Target
	if s, ok := fields[w.cfg.TargetField].(string); ok && s != "" {
		entry.Target = s
	}
	delete(fields, w.cfg.TargetField)

	if s, ok := fields[zerolog.MessageFieldName].(string); ok {
		entry.Message = s
	}
	delete(fields, zerolog.MessageFieldName)

	if t, ok := timeOf(fields[zerolog.TimestampFieldName]); ok {
		entry.Time = t
		delete(fields, zerolog.TimestampFieldName)
	}

	entry.Fields = core.AppendMap(entry.Fields, fields)
	for i := range entry.Fields {
		if entry.Fields[i].Key == zerolog.ErrorFieldName && entry.Fields[i].Type == core.StringType {
			entry.Fields[i].Type = core.ErrorType
		}
	}
	return len(p), w.handle(entry)
}

func (w *Writer) handle(entry *core.Entry) error {
	if !w.handler.Enabled(entry.Metadata()) {
		return nil
	}
	return w.handler.Handle(entry)
}

// decode parses an event into a field map, turning JSON numbers into
// int64 where they fit and float64 otherwise.
func decode(p []byte) (map[string]interface{}, bool) {
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return nil, false
	}
	for k, v := range fields {
		n, ok := v.(json.Number)
		if !ok {
			continue
		}
		if i, err := n.Int64(); err == nil {
			fields[k] = i
		} else if f, err := n.Float64(); err == nil {
			fields[k] = f
		}
	}
	return fields, true
}

// timeOf interprets a timestamp field according to zerolog.TimeFieldFormat.
func timeOf(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		if zerolog.TimeFieldFormat == "" {
			return time.Time{}, false
		}
		parsed, err := time.Parse(zerolog.TimeFieldFormat, t)
		return parsed, err == nil
	case int64:
		switch zerolog.TimeFieldFormat {
		case zerolog.TimeFormatUnix:
			return time.Unix(t, 0), true
		case zerolog.TimeFormatUnixMs:
			return time.UnixMilli(t), true
		case zerolog.TimeFormatUnixMicro:
			return time.UnixMicro(t), true
		case zerolog.TimeFormatUnixNano:
			return time.Unix(0, t), true
		}
	}
	return time.Time{}, false
}

// levelOf maps zerolog levels onto core levels. Fatal and Panic become
// Error; events without a level are Info.
func levelOf(l zerolog.Level) core.Level {
	switch l {
	case zerolog.TraceLevel:
		return core.TraceLevel
	case zerolog.DebugLevel:
		return core.DebugLevel
	case zerolog.WarnLevel:
		return core.WarnLevel
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return core.ErrorLevel
	default:
		return core.InfoLevel
	}
}
