package logger

import (
	"io"
	"testing"

	"github.com/philipp01105/logcat/core"
	"github.com/philipp01105/logcat/formatter"
	"github.com/philipp01105/logcat/handler/consolehandler"
)

func newDiscardLogger() *Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewTargetFormatter(),
	})
	return NewBuilder().WithHandler(h).Build()
}

// BenchmarkInfoExplicitTarget skips the runtime.Caller lookup.
func BenchmarkInfoExplicitTarget(b *testing.B) {
	logger := newDiscardLogger().WithTarget("bench")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message")
	}
}

// BenchmarkInfoDerivedTarget pays for runtime.Caller on every call.
func BenchmarkInfoDerivedTarget(b *testing.B) {
	logger := newDiscardLogger()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message")
	}
}

// BenchmarkFilteredByMaxLevel measures a global call rejected by MaxLevel.
func BenchmarkFilteredByMaxLevel(b *testing.B) {
	saved := MaxLevel()
	SetMaxLevel(core.ErrorFilter)
	defer SetMaxLevel(saved)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Debug("debug message", String("key", "value"))
	}
}

// BenchmarkJSON benchmarks Info() with JSON formatter.
func BenchmarkJSON(b *testing.B) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})
	logger := NewBuilder().WithHandler(h).WithTarget("bench").Build()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message", String("key1", "value1"), String("key2", "value2"))
	}
}
