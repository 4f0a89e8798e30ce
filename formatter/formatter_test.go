package formatter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/logcat/core"
)

func TestTargetFormatter_Default(t *testing.T) {
	f := NewTargetFormatter()

	result, err := f.Format(&core.Entry{Level: core.InfoLevel, Target: "app::mod", Message: "hello"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(result) != "app::mod: hello" {
		t.Errorf("Format() = %q, want %q", result, "app::mod: hello")
	}
}

func TestTargetFormatter_Variants(t *testing.T) {
	tests := []struct {
		name  string
		entry core.Entry
		want  string
	}{
		{
			name:  "no target",
			entry: core.Entry{Message: "hello"},
			want:  "hello",
		},
		{
			name:  "empty message",
			entry: core.Entry{Target: "app"},
			want:  "app: ",
		},
		{
			name: "fields",
			entry: core.Entry{
				Target:  "core::net",
				Message: "retrying connection",
				Fields: []core.Field{
					{Key: "attempt", Type: core.IntType, Int64: 3},
					{Key: "host", Type: core.StringType, Str: "example.com"},
				},
			},
			want: "core::net: retrying connection attempt=3 host=example.com",
		},
		{
			name:  "level and time are not rendered",
			entry: core.Entry{Time: time.Now(), Level: core.ErrorLevel, Target: "app", Message: "boom"},
			want:  "app: boom",
		},
	}

	f := NewTargetFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.Format(&tt.entry)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if string(result) != tt.want {
				t.Errorf("Format() = %q, want %q", result, tt.want)
			}
		})
	}
}

func TestFormatFunc(t *testing.T) {
	calls := 0
	var f Formatter = FormatFunc(func(e *core.Entry) string {
		calls++
		return e.Target + " - " + e.Message
	})

	result, err := f.Format(&core.Entry{Target: "app", Message: "warning"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(result) != "app - warning" {
		t.Errorf("Format() = %q, want %q", result, "app - warning")
	}
	if calls != 1 {
		t.Errorf("FormatFunc called %d times, want 1", calls)
	}

	buf := GetBuffer()
	defer PutBuffer(buf)
	f.(BufferFormatter).FormatEntry(&core.Entry{Target: "x", Message: "y"}, buf)
	if buf.String() != "x - y" {
		t.Errorf("FormatEntry() = %q, want %q", buf.String(), "x - y")
	}
}

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected '[INFO]' in output, got: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestTextFormatter_WithFields(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test",
		Fields: []core.Field{
			{Key: "key1", Type: core.StringType, Str: "value1"},
			{Key: "key2", Type: core.IntType, Int64: 42},
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "key1=value1") {
		t.Errorf("Expected 'key1=value1' in output, got: %s", output)
	}
	if !strings.Contains(output, "key2=42") {
		t.Errorf("Expected 'key2=42' in output, got: %s", output)
	}
}

func TestTextFormatter_WithCaller(t *testing.T) {
	f := NewTextFormatter(Config{IncludeCaller: true})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test",
		Caller: core.CallerInfo{
			File:      "/path/to/file.go",
			ShortFile: "file.go",
			Line:      123,
			Function:  "main.main",
			Defined:   true,
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "file.go:123") {
		t.Errorf("Expected caller info in output, got: %s", output)
	}
}

func TestJSONFormatter_Basic(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Verify it's valid JSON
	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["level"] != "INFO" {
		t.Errorf("Expected level 'INFO', got: %v", data["level"])
	}
	if data["message"] != "test message" {
		t.Errorf("Expected message 'test message', got: %v", data["message"])
	}
}

func TestTextFormatter_TargetAndNewline(t *testing.T) {
	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.TraceLevel,
		Target:  "app/net",
		Message: "dial",
	}

	result, _ := NewTextFormatter(Config{}).Format(entry)
	if string(result) != "2026-02-18T13:00:00Z [TRACE] app/net: dial\n" {
		t.Errorf("unexpected output: %q", result)
	}

	result, _ = NewTextFormatter(Config{OmitTarget: true, OmitNewline: true}).Format(entry)
	if string(result) != "2026-02-18T13:00:00Z [TRACE] dial" {
		t.Errorf("unexpected output: %q", result)
	}
}

func TestJSONFormatter_TargetAndAny(t *testing.T) {
	f := NewJSONFormatter(Config{OmitNewline: true})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.WarnLevel,
		Target:  "core::net",
		Message: "nul\x00inside",
		Fields: []core.Field{
			{Key: "ports", Type: core.AnyType, Any: []int{80, 443}},
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.HasSuffix(string(result), "\n") {
		t.Error("Expected no trailing newline")
	}
	if strings.IndexByte(string(result), 0) >= 0 {
		t.Error("Expected NUL to be escaped")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if data["target"] != "core::net" {
		t.Errorf("Expected target='core::net', got: %v", data["target"])
	}
	if data["message"] != "nul\x00inside" {
		t.Errorf("Expected message to round-trip, got: %q", data["message"])
	}
	ports, ok := data["ports"].([]interface{})
	if !ok || len(ports) != 2 || ports[1] != float64(443) {
		t.Errorf("Expected ports=[80,443], got: %v", data["ports"])
	}
}

func TestJSONFormatter_WithFields(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test",
		Fields: []core.Field{
			{Key: "str", Type: core.StringType, Str: "value"},
			{Key: "int", Type: core.IntType, Int64: 42},
			{Key: "bool", Type: core.BoolType, Int64: 1},
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["str"] != "value" {
		t.Errorf("Expected str='value', got: %v", data["str"])
	}
	if data["int"] != float64(42) { // JSON numbers are float64
		t.Errorf("Expected int=42, got: %v", data["int"])
	}
	if data["bool"] != true {
		t.Errorf("Expected bool=true, got: %v", data["bool"])
	}
}

func TestJSONFormatter_WithCaller(t *testing.T) {
	f := NewJSONFormatter(Config{IncludeCaller: true})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test",
		Caller: core.CallerInfo{
			File:      "/path/to/file.go",
			ShortFile: "file.go",
			Line:      123,
			Function:  "main.main",
			Defined:   true,
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	caller, ok := data["caller"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected caller object in JSON")
	}

	if caller["file"] != "file.go" {
		t.Errorf("Expected file='file.go', got: %v", caller["file"])
	}
	if caller["line"] != float64(123) {
		t.Errorf("Expected line=123, got: %v", caller["line"])
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test message",
		Fields: []core.Field{
			{Key: "key1", Type: core.StringType, Str: "value1"},
			{Key: "key2", Type: core.IntType, Int64: 42},
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter(Config{})
	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test message",
		Fields: []core.Field{
			{Key: "key1", Type: core.StringType, Str: "value1"},
			{Key: "key2", Type: core.IntType, Int64: 42},
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}
