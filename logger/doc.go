// Package logger builds configured slog.Logger instances and provides
// attribute helpers shared across the library.
//
// The factory defaults to JSON output at INFO level; tests and local
// development typically switch to text:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//	)
package logger
