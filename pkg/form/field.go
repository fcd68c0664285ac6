package form

import "github.com/formguard/formguard/pkg/rules"

// Kind is the semantic category of a field. It decides which rule runs for
// a non-empty value; the mapping is closed, so dispatch never depends on
// comparing field identifiers against magic strings.
type Kind int

const (
	// KindText carries no kind rule; only required/min-length apply.
	KindText Kind = iota
	KindEmail
	KindNationalID
	KindPhone
	KindPostalCode
	KindBirthDate
	KindSelection
)

// kindRules is the closed mapping from field kind to registry rule name.
// KindText is deliberately absent.
var kindRules = map[Kind]string{
	KindEmail:      rules.RuleEmail,
	KindNationalID: rules.RuleNationalID,
	KindPhone:      rules.RulePhone,
	KindPostalCode: rules.RulePostalCode,
	KindBirthDate:  rules.RuleBirthDate,
	KindSelection:  rules.RuleNonEmptySel,
}

// ruleName returns the registry rule bound to the kind, if any.
func (k Kind) ruleName() (string, bool) {
	name, ok := kindRules[k]
	return name, ok
}

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEmail:
		return "email"
	case KindNationalID:
		return "nationalId"
	case KindPhone:
		return "phone"
	case KindPostalCode:
		return "postalCode"
	case KindBirthDate:
		return "birthDate"
	case KindSelection:
		return "selection"
	default:
		return "unknown"
	}
}

// Field is one form field: a stable identifier, the current raw value, and
// the declared constraints. The surrounding page layer supplies the field
// list; the controller owns the values afterwards.
type Field struct {
	ID        string
	Value     string
	Kind      Kind
	Required  bool
	MinLength int // 0 means no bound
}
