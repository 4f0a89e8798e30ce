// Package formatter defines how log entries are rendered into text.
//
// Formatter is the single required interface: Format turns an Entry into
// a byte slice. Any func(*core.Entry) string can be used as a Formatter by
// converting it to FormatFunc, which is how applications plug in their own
// rendering policy. Formatters are shared by every goroutine that logs and
// must be safe for concurrent use.
//
// TargetFormatter is the default for native sinks: "<target>: <message>",
// followed by any fields as key=value pairs. Timestamps, level and process
// information are left to the platform log viewer. TextFormatter and
// JSONFormatter produce self-contained lines for stream sinks.
//
// Built-in formatters also implement BufferFormatter, which formats into a
// caller-provided buffer. Handlers check for it once at construction time
// and use it to skip the intermediate byte slice allocation. Buffers
// larger than 64 KiB are not returned to the pool to prevent a single
// large log line from permanently inflating memory usage.
package formatter
