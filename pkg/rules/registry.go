package rules

// Func is a validation rule: it returns nil when the value passes and an
// error carrying the display message when it fails. Implementations must be
// pure and side-effect-free.
type Func func(value string) error

// Canonical names of the built-in rules seeded by NewRegistry.
const (
	RuleRequired    = "required"
	RuleEmail       = "email"
	RuleNationalID  = "nationalId"
	RulePhone       = "phone"
	RulePostalCode  = "postalCode"
	RuleBirthDate   = "birthDate"
	RuleNonEmptySel = "nonEmptySelection"
)

// Registry maps rule names to rule functions. It is constructed once,
// seeded with the built-in rules, and passed explicitly to consumers;
// registration is expected to happen during setup, before validation runs.
type Registry struct {
	rules map[string]Func
}

// NewRegistry returns a registry seeded with all built-in rules.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]Func)}
	r.Register(RuleRequired, Required)
	r.Register(RuleEmail, Email)
	r.Register(RuleNationalID, NationalID)
	r.Register(RulePhone, Phone)
	r.Register(RulePostalCode, PostalCode)
	r.Register(RuleBirthDate, BirthDate)
	r.Register(RuleNonEmptySel, NonEmptySelection)
	return r
}

// Register stores fn under name, replacing any previous rule with that name.
// There is no removal operation; replace with a new function instead.
func (r *Registry) Register(name string, fn Func) {
	r.rules[name] = fn
}

// Get returns the rule registered under name. The second return value is
// false when no such rule exists; callers treat that as "no applicable
// rule", not as a fatal condition.
func (r *Registry) Get(name string) (Func, bool) {
	fn, ok := r.rules[name]
	return fn, ok
}
