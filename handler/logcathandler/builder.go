package logcathandler

import (
	"bytes"
	"fmt"

	"github.com/philipp01105/logcat/formatter"
	"github.com/philipp01105/logcat/logger"
)

// Builder accumulates configuration before committing to a Handler.
type Builder struct {
	tag        []byte
	formatter  formatter.Formatter
	writer     Writer
	nullPolicy NullPolicy
}

// NewBuilder creates a builder for the given tag with the default
// "<target>: <message>" formatter, the native writer and DropRecord. It
// returns an error wrapping ErrInvalidTag if tag contains a NUL byte.
func NewBuilder(tag string) (*Builder, error) {
	cTag, err := encodeTag(tag)
	if err != nil {
		return nil, err
	}
	return &Builder{
		tag:        cTag,
		formatter:  formatter.NewTargetFormatter(),
		nullPolicy: DropRecord,
	}, nil
}

// SetFormatter sets the function used to render every entry. fn is called
// from whichever goroutine logs and must be safe for concurrent use.
// A nil fn leaves the formatter unchanged.
func (b *Builder) SetFormatter(fn formatter.FormatFunc) *Builder {
	if fn != nil {
		b.formatter = fn
	}
	return b
}

// WithFormatter sets any Formatter, e.g. a formatter.JSONFormatter.
// A nil f leaves the formatter unchanged.
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	if f != nil {
		b.formatter = f
	}
	return b
}

// WithWriter replaces the native write primitive (default: NativeWriter()).
func (b *Builder) WithWriter(w Writer) *Builder {
	b.writer = w
	return b
}

// WithNullPolicy sets what happens to messages containing NUL bytes.
func (b *Builder) WithNullPolicy(p NullPolicy) *Builder {
	b.nullPolicy = p
	return b
}

// Build creates the Handler.
func (b *Builder) Build() *Handler {
	w := b.writer
	if w == nil {
		w = NativeWriter()
	}
	return newHandler(b.tag, b.formatter, w, b.nullPolicy)
}

// Init builds the Handler and installs it as the process-wide sink via
// logger.Install. It returns logger.ErrAlreadyInitialized if a sink was
// installed before; the earlier sink stays in place.
func (b *Builder) Init() error {
	return logger.Install(b.Build())
}

// New creates a Handler for tag with default settings.
func New(tag string) (*Handler, error) {
	b, err := NewBuilder(tag)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// Init creates a Handler for tag with default settings and installs it as
// the process-wide sink. It should be called early in main; later calls
// return logger.ErrAlreadyInitialized.
func Init(tag string) error {
	b, err := NewBuilder(tag)
	if err != nil {
		return err
	}
	return b.Init()
}

// encodeTag returns tag as a NUL-terminated byte slice.
func encodeTag(tag string) ([]byte, error) {
	if i := bytes.IndexByte([]byte(tag), 0); i >= 0 {
		return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidTag, tag, i)
	}
	cTag := make([]byte, len(tag)+1)
	copy(cTag, tag)
	return cTag, nil
}
