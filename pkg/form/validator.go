package form

import (
	"log/slog"

	"github.com/formguard/formguard/pkg/logger"
	"github.com/formguard/formguard/pkg/rules"
)

// Validator resolves and evaluates the rules applying to a single field.
// Evaluation order is fixed and stops at the first failure, so at most one
// error is ever reported per field per pass.
type Validator struct {
	registry *rules.Registry
	logger   *slog.Logger
}

// NewValidator creates a field validator over the given registry. A nil
// registry gets the built-in one; a nil logger falls back to slog.Default.
func NewValidator(registry *rules.Registry, logger *slog.Logger) *Validator {
	if registry == nil {
		registry = rules.NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{registry: registry, logger: logger}
}

// Validate evaluates the field and returns nil or the single error that
// applies this pass:
//
//  1. required, when the field is marked required; a failure stops the pass
//  2. the rule bound to the field's kind, only for non-empty values
//  3. the minimum-length bound, when one is declared
//
// A rule name missing from the registry is a configuration problem, not a
// validation failure: it is logged and treated as "no rule applied".
func (v *Validator) Validate(f Field) error {
	if f.Required {
		if err := v.run(rules.RuleRequired, f.Value); err != nil {
			return err
		}
	}

	if f.Value != "" {
		if name, ok := f.Kind.ruleName(); ok {
			if err := v.run(name, f.Value); err != nil {
				return err
			}
		}
	}

	if f.MinLength > 0 {
		if err := rules.MinLength(f.MinLength)(f.Value); err != nil {
			return err
		}
	}

	return nil
}

// run executes the named registry rule, degrading to a no-op when the rule
// does not exist.
func (v *Validator) run(name, value string) error {
	fn, ok := v.registry.Get(name)
	if !ok || fn == nil {
		v.logger.Warn("validation rule not registered", logger.Rule(name))
		return nil
	}
	return fn(value)
}
