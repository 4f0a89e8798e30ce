package logcathandler

import "errors"

var (
	// ErrInvalidTag is returned when a tag contains a NUL byte.
	ErrInvalidTag = errors.New("logcat: tag contains NUL byte")

	// ErrEncoding is returned by Handle when the rendered message contains
	// a NUL byte and the handler uses DropRecord.
	ErrEncoding = errors.New("logcat: message contains NUL byte")
)
