// Package core defines the record types shared by the logging facade and
// its sinks.
//
// Level is the facade's five-step severity scale (Trace through Error) and
// LevelFilter is the threshold type used for the process-wide maximum
// level. Entry is a single log record: the severity, the target (the
// originating package or module path), the already-rendered message and
// any structured fields. Entry.Metadata exposes the subset a sink needs to
// decide whether it wants the record at all.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must
// return it with PutEntry once the handler has consumed it. Sinks must
// not retain an Entry past the Handle call.
//
// Field encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// never escape to the heap. The Any field exists as a fallback for
// arbitrary types but will cause an allocation.
package core
