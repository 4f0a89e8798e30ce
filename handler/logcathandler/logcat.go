package logcathandler

import (
	"bytes"
	"fmt"

	"github.com/philipp01105/logcat/core"
	"github.com/philipp01105/logcat/formatter"
	"github.com/philipp01105/logcat/handler"
)

// NullPolicy decides what happens to a rendered message that contains a
// NUL byte. The native call reads up to the first NUL, so such a message
// can never be passed through as is.
type NullPolicy uint8

const (
	// DropRecord discards the entry; Handle returns ErrEncoding and the
	// drop is counted in Stats.
	DropRecord NullPolicy = iota
	// EscapeNull replaces every NUL with the two characters `\0`.
	EscapeNull
)

// String returns the string representation of the policy
func (p NullPolicy) String() string {
	switch p {
	case DropRecord:
		return "DropRecord"
	case EscapeNull:
		return "EscapeNull"
	default:
		return "Unknown"
	}
}

var escapedNUL = []byte(`\0`)

// Handler writes entries to the Android log buffer. It is immutable after
// construction and safe for concurrent use.
type Handler struct {
	tag             []byte // NUL-terminated
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	writer          Writer
	nullPolicy      NullPolicy
	stats           *handler.Stats
}

func newHandler(tag []byte, f formatter.Formatter, w Writer, p NullPolicy) *Handler {
	h := &Handler{
		tag:        tag,
		formatter:  f,
		writer:     w,
		nullPolicy: p,
		stats:      handler.NewStats(),
	}
	h.bufferFormatter, _ = f.(formatter.BufferFormatter)
	return h
}

// Tag returns the tag without its terminator.
func (h *Handler) Tag() string {
	return string(trimNUL(h.tag))
}

// Enabled always returns true. Filtering is left to the facade's
// process-wide maximum level.
func (h *Handler) Enabled(core.Metadata) bool {
	return true
}

// Handle renders the entry, maps its level and writes it to the native
// log. A message containing NUL is either dropped with ErrEncoding or
// escaped, depending on the NullPolicy; it is never truncated.
func (h *Handler) Handle(entry *core.Entry) error {
	if !h.Enabled(entry.Metadata()) {
		return nil
	}

	buf := formatter.GetBuffer()
	defer formatter.PutBuffer(buf)

	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatEntry(entry, buf)
	} else {
		data, err := h.formatter.Format(entry)
		if err != nil {
			h.stats.IncrementDropped(entry.Level)
			return fmt.Errorf("logcat: format: %w", err)
		}
		buf.Write(data)
	}

	if bytes.IndexByte(buf.Bytes(), 0) >= 0 {
		if h.nullPolicy != EscapeNull {
			h.stats.IncrementDropped(entry.Level)
			return ErrEncoding
		}
		escaped := bytes.ReplaceAll(buf.Bytes(), []byte{0}, escapedNUL)
		buf.Reset()
		buf.Write(escaped)
	}
	buf.WriteByte(0)

	h.writer.WriteLog(PriorityFor(entry.Level), h.tag, buf.Bytes())
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of processed and dropped counts.
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close does nothing; the native log needs no teardown.
func (h *Handler) Close() error {
	return nil
}
