package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/logcat/core"
)

// MultiHandler sends log entries to multiple handlers, e.g. the native
// log buffer and a console during development.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether any child handler is enabled.
func (h *MultiHandler) Enabled(md core.Metadata) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(md) {
			return true
		}
	}
	return false
}

// Handle sends the entry to every enabled child. All child errors are
// returned, combined.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	md := entry.Metadata()
	var err error
	for _, handler := range h.handlers {
		if !handler.Enabled(md) {
			continue
		}
		err = multierr.Append(err, handler.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
