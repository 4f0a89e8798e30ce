// Package benchmark compares the cost of reaching the logcat sink through
// each supported front end: the logger facade, log/slog, and the zap,
// zerolog and logrus bridges. Native zap, zerolog and logrus loggers
// writing JSON to io.Discard are measured alongside as a baseline.
package benchmark

import (
	"github.com/philipp01105/logcat/handler/logcathandler"
)

// discardWriter stands in for liblog so benchmarks measure formatting
// and encoding only.
type discardWriter struct{}

func (discardWriter) WriteLog(_ logcathandler.Priority, tag, msg []byte) int {
	return len(tag) + len(msg)
}

func newLogcatHandler() *logcathandler.Handler {
	b, err := logcathandler.NewBuilder("Bench")
	if err != nil {
		panic(err)
	}
	return b.WithWriter(discardWriter{}).Build()
}
