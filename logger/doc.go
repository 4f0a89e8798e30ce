// Package logger is the logging facade: the API application and library
// code log through, independent of where records end up.
//
// Records reach a sink (a handler.Handler) in one of two ways. A Logger
// built with an explicit handler sends to that handler. Everything else,
// including the package-level functions, sends to the process-wide sink
// registered with Install. Install succeeds exactly once per process;
// later calls return ErrAlreadyInitialized and leave the first sink in
// place. Until a sink is installed, records sent to the global sink are
// discarded.
//
//	if err := logcathandler.Init("MyApp"); err != nil { // calls Install
//	    panic(err)
//	}
//	logger.Info("ready", logger.Int("port", 8080))
//
// Records bound for the global sink are first checked against the global
// maximum level (MaxLevel). It starts at core.OffFilter and Install raises
// it to core.LevelFilterMax; SetMaxLevel adjusts it afterwards.
//
// Every record carries a target identifying where it came from. Unless a
// Logger is given one with For or WithTarget, the target is the import
// path of the calling package.
//
// A Logger is immutable after construction. With and WithTarget return
// derived loggers that share the handler:
//
//	netLog := logger.For("core::net").With(logger.String("peer", addr))
//	netLog.Warn("retrying connection")
//
// Level checks happen before any allocation, and formatted variants
// (Infof, ...) only run fmt.Sprintf once the record is known to be wanted.
package logger
