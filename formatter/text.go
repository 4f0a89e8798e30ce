package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/philipp01105/logcat/core"
)

// TextFormatter formats log entries as human-readable text lines:
//
//	2026-01-15T12:00:00Z [INFO] app/net: message key=value
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	return formatWith(entry, f.FormatEntry), nil
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel: " [TRACE] ",
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
}

// FormatEntry writes the formatted entry into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if entry.Level.Valid() {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		buf.WriteString("] ")
	}

	if !f.OmitTarget && entry.Target != "" {
		buf.WriteString(entry.Target)
		buf.WriteString(": ")
	}

	buf.WriteString(entry.Message)
	writeFields(buf, entry.Fields)

	if !f.OmitNewline {
		buf.WriteByte('\n')
	}
}
