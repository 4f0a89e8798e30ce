package formatter_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/philipp01105/logcat/core"
	"github.com/philipp01105/logcat/formatter"
)

func ExampleNewTargetFormatter() {
	f := formatter.NewTargetFormatter()

	out, _ := f.Format(&core.Entry{
		Level:   core.WarnLevel,
		Target:  "core::net",
		Message: "retrying connection",
	})
	fmt.Println(string(out))
	// Output:
	// core::net: retrying connection
}

// Any function from an entry to a string is a Formatter.
func ExampleFormatFunc() {
	f := formatter.FormatFunc(func(e *core.Entry) string {
		return fmt.Sprintf("%s - %s", e.Target, e.Message)
	})

	out, _ := f.Format(&core.Entry{Target: "app", Message: "Warning message"})
	fmt.Println(string(out))
	// Output:
	// app - Warning message
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "request handled",
		Fields: []core.Field{
			{Key: "status", Int64: 200, Type: core.Int64Type},
		},
	}

	out, _ := f.Format(entry)
	fmt.Println(strings.Contains(string(out), `"level":"INFO"`))
	fmt.Println(strings.Contains(string(out), `"status":200`))
	// Output:
	// true
	// true
}
