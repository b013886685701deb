// Package logging defines the structured-logging interface the client uses.
// The concrete implementation wraps slog; swapping in zap or zerolog only
// requires another adapter.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Warn(ctx, "stored session is unpaired", "key", key)
type Logger interface {
	// Info logs routine events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but recoverable conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key-value pairs.
	With(args ...any) Logger
}
