package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/logcat/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// FormatFunc adapts an ordinary function to the Formatter interface.
type FormatFunc func(entry *core.Entry) string

// Format calls fn(entry).
func (fn FormatFunc) Format(entry *core.Entry) ([]byte, error) {
	return []byte(fn(entry)), nil
}

// FormatEntry calls fn(entry) and writes the result to buf.
func (fn FormatFunc) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(fn(entry))
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
	// OmitTarget drops the target from the output
	OmitTarget bool
	// OmitNewline drops the trailing newline, for sinks that are
	// record-oriented rather than stream-oriented
	OmitNewline bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the shared pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the shared pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// formatWith renders entry using fn into a pooled buffer and returns a copy.
func formatWith(entry *core.Entry, fn func(*core.Entry, *bytes.Buffer)) []byte {
	buf := GetBuffer()
	defer PutBuffer(buf)

	fn(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// writeFields appends " key=value" for every field.
func writeFields(buf *bytes.Buffer, fields []core.Field) {
	for _, field := range fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.Write(field.AppendValue(buf.AvailableBuffer()))
	}
}
