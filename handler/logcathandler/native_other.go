//go:build !android || !cgo

package logcathandler

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	fallbackOnce   sync.Once
	fallbackWriter *ZapWriter
)

// NativeWriter returns a ZapWriter printing to stderr. liblog only exists
// on Android; this keeps the package usable on development hosts.
func NativeWriter() Writer {
	fallbackOnce.Do(func() {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(cfg),
			zapcore.Lock(os.Stderr),
			zapcore.DebugLevel,
		)
		fallbackWriter = NewZapWriter(zap.New(core))
	})
	return fallbackWriter
}
