package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Metadata is the part of a record a sink may inspect before deciding
// whether to accept it.
type Metadata struct {
	Level  Level
	Target string
}

// Entry represents a log entry with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Target  string
	Message string
	Fields  []Field
	Caller  CallerInfo
}

// Metadata returns the entry's level and target.
func (e *Entry) Metadata() Metadata {
	return Metadata{Level: e.Level, Target: e.Target}
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// Package returns the import path of the package the caller's function
// belongs to, or "" when the caller is unknown.
func (c CallerInfo) Package() string {
	return PackageOf(c.Function)
}

// PackageOf extracts the package import path from a fully qualified
// function name as reported by runtime.FuncForPC, e.g.
// "github.com/acme/app/net.(*Conn).Dial" -> "github.com/acme/app/net".
// The runtime escapes dots in the last path element as "%2e"
// ("gopkg.in/yaml%2ev3.Marshal"); they are unescaped in the result.
func PackageOf(function string) string {
	if function == "" {
		return ""
	}
	slash := strings.LastIndexByte(function, '/')
	pkg := function
	if dot := strings.IndexByte(function[slash+1:], '.'); dot >= 0 {
		pkg = function[:slash+1+dot]
	}
	return strings.ReplaceAll(pkg, "%2e", ".")
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	e.Fields = e.Fields[:0]
	e.Message = ""
	e.Target = ""
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
