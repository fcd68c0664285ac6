package rules

import (
	"fmt"
	"strings"
)

// Required fails when the value is empty after trimming whitespace.
func Required(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrFieldRequired
	}
	return nil
}

// MinLength returns a rule failing when the value is shorter than min
// characters. It is the only parameterized built-in, so it is exposed as a
// factory rather than seeded into the registry under a fixed name.
func MinLength(min int) Func {
	return func(value string) error {
		if len(value) < min {
			return fmt.Errorf("must be at least %d characters", min)
		}
		return nil
	}
}

// NonEmptySelection fails when no option has been chosen. Unlike Required
// it does not trim: a dropdown either has a selected value or it does not.
func NonEmptySelection(value string) error {
	if value == "" {
		return ErrNoSelection
	}
	return nil
}
