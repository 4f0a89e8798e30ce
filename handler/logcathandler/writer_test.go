package logcathandler

import (
	"sync"

	"github.com/philipp01105/logcat/core"
)

// nativeCall is one recorded WriteLog invocation, copied out of the
// caller's buffers.
type nativeCall struct {
	prio Priority
	tag  []byte
	msg  []byte
}

// recordingWriter is a test double for the native write primitive.
type recordingWriter struct {
	mu    sync.Mutex
	calls []nativeCall
}

func (w *recordingWriter) WriteLog(prio Priority, tag, msg []byte) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = append(w.calls, nativeCall{
		prio: prio,
		tag:  append([]byte(nil), tag...),
		msg:  append([]byte(nil), msg...),
	})
	return len(msg)
}

func (w *recordingWriter) snapshot() []nativeCall {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]nativeCall(nil), w.calls...)
}

func newEntry() *core.Entry {
	return &core.Entry{Level: core.TraceLevel, Target: "app::mod", Message: "hello"}
}
