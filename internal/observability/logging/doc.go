// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for the logging patterns used by the catalog services.
//
// Example usage:
//
//	logger := logging.New(os.Stdout, logging.ParseLevel("debug"), logging.FormatText)
//	ctx := logging.WithLogger(context.Background(), logger)
//	logging.FromContext(ctx).Info("catalog ready")
package logging
