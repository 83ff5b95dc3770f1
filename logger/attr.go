package logger

import "log/slog"

// Error returns a standardized attribute for a single error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Component identifies the library component emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Model names the model type involved in a bind or validate call.
func Model(name string) slog.Attr {
	return slog.String("model", name)
}
