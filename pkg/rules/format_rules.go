package rules

import (
	"regexp"
	"strings"
)

// Simple local@domain.tld shape; deliberately looser than RFC 5322 since
// the goal is catching typos, not enforcing the full grammar.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email fails when a non-empty value does not look like local@domain.tld.
// Empty values pass; pair with Required to make the field mandatory.
func Email(value string) error {
	if value == "" {
		return nil
	}
	if !emailRegex.MatchString(value) {
		return ErrInvalidEmail
	}
	return nil
}

// Phone fails unless the value holds 10 or 11 digits once formatting
// characters are stripped, covering landlines and mobiles with area code.
func Phone(value string) error {
	n := len(digitsOnly(value))
	if n != 10 && n != 11 {
		return ErrPhoneLength
	}
	return nil
}

// PostalCode fails unless the value holds exactly 8 digits once formatting
// characters are stripped.
func PostalCode(value string) error {
	if len(digitsOnly(value)) != 8 {
		return ErrPostalCodeLength
	}
	return nil
}

// digitsOnly strips every non-digit rune, undoing any input mask.
func digitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, value)
}
