package handler

import (
	"errors"
	"testing"

	"github.com/philipp01105/logcat/core"
)

func TestMultiHandler(t *testing.T) {
	h1 := &recordingHandler{}
	h2 := &recordingHandler{min: core.ErrorLevel}

	multi := NewMultiHandler(h1, h2)
	defer multi.Close()

	entry := &core.Entry{Level: core.InfoLevel, Message: "multi test"}
	if err := multi.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}

	if len(h1.entries) != 1 || h1.last().Message != "multi test" {
		t.Error("First handler did not receive message")
	}
	if len(h2.entries) != 0 {
		t.Error("Second handler should have skipped an Info entry")
	}

	entry.Level = core.ErrorLevel
	_ = multi.Handle(entry)
	if len(h2.entries) != 1 {
		t.Error("Second handler did not receive Error entry")
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	multi := NewMultiHandler(&recordingHandler{min: core.WarnLevel}, &recordingHandler{min: core.ErrorLevel})

	if multi.Enabled(core.Metadata{Level: core.InfoLevel}) {
		t.Error("Info should not be enabled")
	}
	if !multi.Enabled(core.Metadata{Level: core.WarnLevel}) {
		t.Error("Warn should be enabled")
	}
	if NewMultiHandler().Enabled(core.Metadata{Level: core.ErrorLevel}) {
		t.Error("empty MultiHandler should not be enabled")
	}
}

func TestMultiHandler_CombinesErrors(t *testing.T) {
	errOther := errors.New("other")
	h1 := &recordingHandler{err: errBoom}
	h2 := &recordingHandler{err: errOther}
	multi := NewMultiHandler(h1, h2)

	err := multi.Handle(&core.Entry{Level: core.InfoLevel})
	if !errors.Is(err, errBoom) || !errors.Is(err, errOther) {
		t.Errorf("Handle() error = %v, want both child errors", err)
	}
	if len(h2.entries) != 1 {
		t.Error("a failing child must not stop the others")
	}

	err = multi.Close()
	if !errors.Is(err, errBoom) || !errors.Is(err, errOther) {
		t.Errorf("Close() error = %v, want both child errors", err)
	}
	if !h1.closed || !h2.closed {
		t.Error("Close() should close every child")
	}
}

func TestNopHandler(t *testing.T) {
	var h Handler = NopHandler{}
	if h.Enabled(core.Metadata{Level: core.ErrorLevel}) {
		t.Error("NopHandler should never be enabled")
	}
	if err := h.Handle(&core.Entry{}); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
}
