// Package obslog wraps log/slog behind a small Logger interface so
// callers depend on the interface the search orchestrator actually
// uses, not on *slog.Logger directly.
package obslog
