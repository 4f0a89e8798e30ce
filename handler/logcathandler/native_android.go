//go:build android && cgo

package logcathandler

/*
#cgo LDFLAGS: -llog
#include <android/log.h>
*/
import "C"

import "unsafe"

type liblogWriter struct{}

func (liblogWriter) WriteLog(prio Priority, tag, msg []byte) int {
	return int(C.__android_log_write(
		C.int(prio),
		(*C.char)(unsafe.Pointer(unsafe.SliceData(tag))),
		(*C.char)(unsafe.Pointer(unsafe.SliceData(msg))),
	))
}

// NativeWriter returns the Writer backed by liblog's __android_log_write.
func NativeWriter() Writer {
	return liblogWriter{}
}
