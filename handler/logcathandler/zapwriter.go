package logcathandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapWriter is a Writer that forwards native writes to a zap.Logger. The
// tag and priority are attached as fields. PriorityFatal is logged at
// zap's Error level; ZapWriter never exits or panics.
type ZapWriter struct {
	logger *zap.Logger
}

// NewZapWriter creates a Writer backed by l.
func NewZapWriter(l *zap.Logger) *ZapWriter {
	return &ZapWriter{logger: l}
}

// zapLevel maps an Android priority onto zap's levels.
func zapLevel(prio Priority) zapcore.Level {
	switch prio {
	case PriorityVerbose, PriorityDebug:
		return zapcore.DebugLevel
	case PriorityWarn:
		return zapcore.WarnLevel
	case PriorityError, PriorityFatal:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// WriteLog logs msg with the tag and priority as fields and returns the
// message length, or 0 when the logger's level discards it.
func (w *ZapWriter) WriteLog(prio Priority, tag, msg []byte) int {
	if prio == PrioritySilent {
		return 0
	}
	msg = trimNUL(msg)
	ce := w.logger.Check(zapLevel(prio), string(msg))
	if ce == nil {
		return 0
	}
	ce.Write(
		zap.ByteString("tag", trimNUL(tag)),
		zap.String("priority", prio.String()),
	)
	return len(msg)
}
