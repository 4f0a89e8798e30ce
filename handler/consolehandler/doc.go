// Package consolehandler provides a synchronous sink that writes
// formatted log entries to any io.Writer (default: os.Stderr).
//
// It is the development counterpart to logcathandler: on a host without
// the Android log buffer, or alongside it through handler.MultiHandler,
// records are rendered with a formatter.Formatter and written with one
// Write call each. Writes are serialized with a mutex unless the writer
// is known to be safe for concurrent use.
package consolehandler
