package handler

import (
	"github.com/philipp01105/logcat/core"
)

// Handler is the sink capability the logging facade dispatches to.
// Implementations must be safe for concurrent use: once installed a
// Handler is shared by every goroutine that logs.
type Handler interface {
	// Enabled reports whether the handler wants records with the given
	// metadata. It must not mutate any state.
	Enabled(md core.Metadata) bool

	// Handle processes a log entry. The entry is only valid for the
	// duration of the call.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count what they process.
type StatsProvider interface {
	Stats() Snapshot
}
