// Package logging defines the structured-logging port used by the shipguard
// tools and its log/slog adapter.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "pass finished", "dir", dir, "obfuscated", n)
type Logger interface {
	// Debug logs per-file detail that is off at the default level.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs pass progress and summaries.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs recoverable problems, such as an unreadable stored session.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures that end the current operation.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
