package logger

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/logcat/core"
	"github.com/philipp01105/logcat/handler"
)

var (
	// ErrAlreadyInitialized is returned by Install when a sink has already
	// been installed in this process.
	ErrAlreadyInitialized = errors.New("logger: global sink already installed")

	// ErrNilHandler is returned by Install when given a nil handler.
	ErrNilHandler = errors.New("logger: nil handler")
)

type sinkCell struct {
	h handler.Handler
}

var (
	// sink is written once by Install and only read afterwards.
	sink     atomic.Pointer[sinkCell]
	maxLevel atomic.Int32

	installMu sync.Mutex
)

// Install registers h as the process-wide sink and sets the global maximum
// level to core.LevelFilterMax. It succeeds at most once per process.
func Install(h handler.Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	installMu.Lock()
	defer installMu.Unlock()
	if sink.Load() != nil {
		return ErrAlreadyInitialized
	}
	// The level is raised before the sink is published, so any goroutine
	// that sees the sink also sees the raised level.
	SetMaxLevel(core.LevelFilterMax)
	sink.Store(&sinkCell{h: h})
	return nil
}

// Installed returns the process-wide sink, or a handler.NopHandler and
// false if none has been installed.
func Installed() (handler.Handler, bool) {
	if c := sink.Load(); c != nil {
		return c.h, true
	}
	return handler.NopHandler{}, false
}

// SetMaxLevel sets the global maximum level for records sent to the
// process-wide sink.
func SetMaxLevel(f core.LevelFilter) {
	maxLevel.Store(int32(f))
}

// MaxLevel returns the global maximum level.
func MaxLevel() core.LevelFilter {
	return core.LevelFilter(maxLevel.Load())
}
