package logger

import "log/slog"

// Error records a single error under the key "error". Nil errors
// produce an empty attribute that slog drops silently.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// TeamID records the team identifier under the key "team_id".
func TeamID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("team_id", id)
}

// Operation records the backend operation name under the key "operation".
func Operation(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("operation", name)
}
