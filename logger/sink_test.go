package logger

import (
	"errors"
	"sync"
	"testing"

	"github.com/philipp01105/logcat/core"
)

var errSink = errors.New("sink failure")

// recordingSink captures copies of handled entries.
type recordingSink struct {
	mu      sync.Mutex
	entries []core.Entry
	reject  bool
	err     error
	enabled int
}

func (s *recordingSink) Enabled(core.Metadata) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled++
	return !s.reject
}

func (s *recordingSink) Handle(entry *core.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := *entry
	e.Fields = append([]core.Field(nil), entry.Fields...)
	s.entries = append(s.entries, e)
	return s.err
}

func (s *recordingSink) Close() error { return nil }

func (s *recordingSink) only(t *testing.T) core.Entry {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) != 1 {
		t.Fatalf("Expected exactly one entry, got %d", len(s.entries))
	}
	return s.entries[0]
}

// resetGlobal clears the process-wide sink for the duration of a test.
func resetGlobal(t *testing.T) {
	t.Helper()
	reset := func() {
		sink.Store(nil)
		SetMaxLevel(core.OffFilter)
	}
	reset()
	t.Cleanup(reset)
}
