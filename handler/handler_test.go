package handler

import (
	"errors"
	"sync"

	"github.com/philipp01105/logcat/core"
)

// recordingHandler captures copies of handled entries.
type recordingHandler struct {
	mu      sync.Mutex
	entries []core.Entry
	min     core.Level
	err     error
	closed  bool
}

func (h *recordingHandler) Enabled(md core.Metadata) bool {
	return md.Level >= h.min
}

func (h *recordingHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	e := *entry
	e.Fields = append([]core.Field(nil), entry.Fields...)
	h.entries = append(h.entries, e)
	return h.err
}

func (h *recordingHandler) Close() error {
	h.closed = true
	return h.err
}

func (h *recordingHandler) last() core.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1]
}

func (h *recordingHandler) fieldMap() map[string]string {
	m := make(map[string]string)
	for _, f := range h.last().Fields {
		m[f.Key] = f.StringValue()
	}
	return m
}

var errBoom = errors.New("boom")
