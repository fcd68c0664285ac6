// Package logger builds the *slog.Logger injected into the form engine's
// components. It standardises output format, level, and the attribute names
// used for form-engine events so that warnings from different controllers
// aggregate cleanly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Form("checkout")),
//	)
//
//	ctrl := form.NewController("checkout", fields, form.WithLogger(log))
//
// Helper constructors in attr.go (Form, Field, Rule, Error) keep attribute
// naming consistent across packages.
package logger
