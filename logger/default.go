package logger

import (
	"github.com/philipp01105/logcat/core"
)

// defaultLogger sends to the process-wide sink. Its caller skip accounts
// for the package-level wrapper functions below.
var defaultLogger = &Logger{
	level:      core.TraceLevel,
	callerSkip: defaultCallerSkip + 1,
}

// Default returns a Logger that sends to the process-wide sink and tags
// entries with the calling package.
func Default() *Logger {
	return defaultLogger.withCallerSkip(defaultCallerSkip)
}

// For returns a Logger that sends to the process-wide sink and tags
// entries with target.
func For(target string) *Logger {
	return Default().WithTarget(target)
}

func (l *Logger) withCallerSkip(skip int) *Logger {
	c := *l
	c.callerSkip = skip
	return &c
}

// Package-level convenience functions using the process-wide sink

// Enabled reports whether a record at level would reach the process-wide sink
func Enabled(level core.Level) bool {
	return defaultLogger.Enabled(level)
}

// Log logs a message at the specified level
func Log(level core.Level, msg string, fields ...core.Field) {
	defaultLogger.Log(level, msg, fields...)
}

// Trace logs a trace message
func Trace(msg string, fields ...core.Field) {
	defaultLogger.Trace(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...core.Field) {
	defaultLogger.Debug(msg, fields...)
}

// Info logs an info message
func Info(msg string, fields ...core.Field) {
	defaultLogger.Info(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...core.Field) {
	defaultLogger.Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...core.Field) {
	defaultLogger.Error(msg, fields...)
}

// Tracef logs a formatted trace message
func Tracef(format string, args ...interface{}) {
	defaultLogger.Tracef(format, args...)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	defaultLogger.Debugf(format, args...)
}

// Infof logs a formatted info message
func Infof(format string, args ...interface{}) {
	defaultLogger.Infof(format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	defaultLogger.Warnf(format, args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	defaultLogger.Errorf(format, args...)
}

// With creates a Logger for the process-wide sink with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
