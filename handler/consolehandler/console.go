package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/logcat/core"
	"github.com/philipp01105/logcat/formatter"
	"github.com/philipp01105/logcat/handler"
)

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Level is the least severe level the handler accepts (default: TraceLevel)
	Level core.Level
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// ConsoleHandler writes each accepted entry to its writer synchronously.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	level           core.Level
	concurrentSafe  bool
	stats           *handler.Stats
	mu              sync.Mutex
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		level:          cfg.Level,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          handler.NewStats(),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	return h
}

// Enabled reports whether md.Level is at or above the configured level.
func (h *ConsoleHandler) Enabled(md core.Metadata) bool {
	return md.Level >= h.level
}

// Handle formats and writes an entry.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if !h.Enabled(entry.Metadata()) {
		return nil
	}

	var data []byte
	if h.bufferFormatter != nil {
		buf := formatter.GetBuffer()
		defer formatter.PutBuffer(buf)
		h.bufferFormatter.FormatEntry(entry, buf)
		data = buf.Bytes()
	} else {
		var err error
		if data, err = h.formatter.Format(entry); err != nil {
			h.stats.IncrementDropped(entry.Level)
			return err
		}
	}

	var err error
	if h.concurrentSafe {
		_, err = h.writer.Write(data)
	} else {
		h.mu.Lock()
		_, err = h.writer.Write(data)
		h.mu.Unlock()
	}
	if err != nil {
		h.stats.IncrementDropped(entry.Level)
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close does nothing; the writer is owned by the caller.
func (h *ConsoleHandler) Close() error {
	return nil
}
