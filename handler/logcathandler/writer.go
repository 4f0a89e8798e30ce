package logcathandler

// Writer is the native write primitive. tag and msg are NUL-terminated;
// the terminator is included in the slices. Implementations must not
// retain either slice after returning. The return value mirrors
// __android_log_write (bytes written or a negative errno) and is ignored
// by Handler.
type Writer interface {
	WriteLog(prio Priority, tag, msg []byte) int
}

// WriterFunc adapts an ordinary function to the Writer interface.
type WriterFunc func(prio Priority, tag, msg []byte) int

// WriteLog calls fn(prio, tag, msg).
func (fn WriterFunc) WriteLog(prio Priority, tag, msg []byte) int {
	return fn(prio, tag, msg)
}

// trimNUL drops the trailing terminator, if any.
func trimNUL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == 0 {
		return b[:n-1]
	}
	return b
}
