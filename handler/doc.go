// Package handler defines the Handler interface the logger facade
// dispatches to, plus the handler plumbing shared by every sink.
//
// A Handler is a capability with three operations: Enabled decides from
// a record's metadata whether the handler wants it, Handle processes an
// accepted record synchronously, and Close releases resources. Handlers
// are shared by all goroutines once installed and must be safe for
// concurrent use.
//
// Built-in handlers:
//
//   - NopHandler discards everything; it is what the facade uses before a
//     sink is installed.
//   - MultiHandler fans a record out to several children and combines
//     their errors.
//   - SlogHandler adapts any Handler to log/slog.Handler so the standard
//     library's structured logger can feed the same sink.
//
// Concrete sinks live in subpackages: logcathandler writes to the
// Android log buffer and consolehandler writes formatted text to an
// io.Writer. Handlers that count their work implement StatsProvider.
package handler
