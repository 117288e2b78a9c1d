// Package logging provides the small logging facade used by the benchmark
// harness and the command line tool.
//
// The Logger interface is context-aware so an application can route records
// through its own logging system:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// The default implementation writes through github.com/charmbracelet/log:
//
//	logger := logging.New(nil) // stderr, info level
//	logger.Info(ctx, "benchmark finished", "name", "noop(42)", "speedup", 3.2)
//
// Use Discard in tests and for quiet runs. Arguments are alternating key and
// value pairs.
package logging
