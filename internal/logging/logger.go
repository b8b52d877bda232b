// Package logging defines the minimal structured-logging interface used by
// the portale client. Implementations can wrap slog, zerolog, or a test
// recorder.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Info(ctx, "request done", "method", m, "status", code)
type Logger interface {
	// Debug logs fine-grained diagnostics (per-request traces).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions, e.g. a failed
	// best-effort session write.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value
	// pairs.
	With(args ...any) Logger
}

// Nop is a Logger that discards everything. Useful as a default when the
// caller does not care about diagnostics.
type Nop struct{}

func (Nop) Debug(ctx context.Context, msg string, args ...any) {}
func (Nop) Info(ctx context.Context, msg string, args ...any)  {}
func (Nop) Warn(ctx context.Context, msg string, args ...any)  {}
func (Nop) Error(ctx context.Context, msg string, args ...any) {}
func (n Nop) With(args ...any) Logger                          { return n }
