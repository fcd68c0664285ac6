package logger

import "log/slog"

// Form records the form identifier under the key "form".
func Form(id string) slog.Attr {
	return slog.String("form", id)
}

// Field records the field identifier under the key "field".
func Field(id string) slog.Attr {
	return slog.String("field", id)
}

// Rule records a validation rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}
