package form

import (
	"log/slog"
	"time"

	"github.com/formguard/formguard/pkg/rules"
	"github.com/formguard/formguard/pkg/submission"
)

// Option configures a Controller.
type Option func(*Controller)

// WithRegistry replaces the rule registry. Use it to add custom rules or
// override built-ins before the controller starts validating.
func WithRegistry(reg *rules.Registry) Option {
	return func(c *Controller) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithPresenter replaces the error presenter.
func WithPresenter(p Presenter) Option {
	return func(c *Controller) {
		if p != nil {
			c.presenter = p
		}
	}
}

// WithStore replaces the submission store.
func WithStore(s *submission.Store) Option {
	return func(c *Controller) {
		if s != nil {
			c.store = s
		}
	}
}

// WithNotifier replaces the success notifier.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithLogger sets the logger for configuration warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSuccessNotice overrides the success message and its display duration.
func WithSuccessNotice(message string, d time.Duration) Option {
	return func(c *Controller) {
		c.notice = Notice{Message: message, Duration: d}
	}
}
