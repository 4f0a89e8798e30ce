package formatter

import (
	"bytes"

	"github.com/philipp01105/logcat/core"
)

// TargetFormatter renders "<target>: <message>" with fields appended as
// " key=value". When the entry has no target only the message is written,
// without a ": " prefix. Entries from the logger facade always carry a
// target, so this only affects entries built by hand or by bridges.
// No timestamp, level or trailing newline is produced; the native log
// buffer records those itself.
type TargetFormatter struct{}

// NewTargetFormatter creates the default native formatter
func NewTargetFormatter() *TargetFormatter {
	return &TargetFormatter{}
}

// Format formats an entry as "<target>: <message>"
func (f *TargetFormatter) Format(entry *core.Entry) ([]byte, error) {
	return formatWith(entry, f.FormatEntry), nil
}

// FormatEntry formats an entry into the given buffer (implements BufferFormatter).
func (f *TargetFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if entry.Target != "" {
		buf.WriteString(entry.Target)
		buf.WriteString(": ")
	}
	buf.WriteString(entry.Message)
	writeFields(buf, entry.Fields)
}
