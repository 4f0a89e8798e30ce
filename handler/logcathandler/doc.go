// Package logcathandler writes log entries to the Android log buffer, the
// one read by logcat.
//
// Each accepted entry is rendered by a formatter (by default
// "<target>: <message>"), checked and NUL-terminated, mapped to an
// Android priority and passed to __android_log_write together with the
// handler's tag:
//
//	core.ErrorLevel -> PriorityError   (E)
//	core.WarnLevel  -> PriorityWarn    (W)
//	core.InfoLevel  -> PriorityInfo    (I)
//	core.DebugLevel -> PriorityDebug   (D)
//	core.TraceLevel -> PriorityVerbose (V)
//
// Typical use is a single call early in main:
//
//	if err := logcathandler.Init("MyApp"); err != nil {
//	    panic(err)
//	}
//	logger.Warn("Don't log sensitive information!")
//
// which shows up in logcat as
//
//	12-25 12:00:00.000  1234  1234 W MyApp: main: Don't log sensitive information!
//
// Use NewBuilder to change the formatter, the NUL policy or the Writer
// before building or installing the handler.
//
// The native writer is only available when building for android with cgo
// enabled, linking against liblog. On every other platform NativeWriter
// returns a zap-backed Writer that prints to stderr, so code using this
// package builds and runs unchanged on development hosts.
//
// The handler never buffers and never retries. The status returned by the
// native call is ignored.
package logcathandler
