package handler

import "github.com/philipp01105/logcat/core"

// NopHandler discards everything. It is what the facade dispatches to
// before a sink has been installed.
type NopHandler struct{}

// Enabled always returns false.
func (NopHandler) Enabled(core.Metadata) bool { return false }

// Handle does nothing.
func (NopHandler) Handle(*core.Entry) error { return nil }

// Close does nothing.
func (NopHandler) Close() error { return nil }
