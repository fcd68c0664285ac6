// Package rules provides the validation rule registry and the built-in
// field-level validation rules used by the form engine.
//
// A rule is a pure function classifying a raw field value: it returns nil
// when the value is acceptable and an error carrying a human-readable
// message otherwise. Rules never mutate state and are safe for concurrent
// use, so a single Registry can back any number of forms.
//
// # Architecture
//
// Each source file groups a family of rules for a specific domain
// (`string_rules.go`, `format_rules.go`, `identifier_rules.go`,
// `date_rules.go`). A Registry is constructed once with NewRegistry, which
// seeds every built-in rule under its canonical name, and is then passed
// explicitly to whatever consumes it; there is no ambient global registry.
//
// Core building blocks:
//   - Func      – rule function: func(value string) error
//   - Registry  – name→Func mapping with Register/Get
//   - MinLength – factory for the one parameterized rule
//
// # Usage
//
//	reg := rules.NewRegistry()
//	reg.Register("zipPlus4", func(v string) error { ... })
//
//	if fn, ok := reg.Get(rules.RuleEmail); ok {
//	    if err := fn("user@example.com"); err != nil {
//	        // err.Error() is the message to display
//	    }
//	}
//
// # Error Handling
//
// Fixed-message failures are exposed as package-level sentinel errors
// (ErrFieldRequired, ErrInvalidEmail, ...) so callers can branch with
// errors.Is while still displaying err.Error() verbatim.
package rules
