package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formguard/formguard/pkg/rules"
)

func TestRequired(t *testing.T) {
	t.Run("passes for non-empty value", func(t *testing.T) {
		assert.NoError(t, rules.Required("John"))
	})

	t.Run("fails for empty value", func(t *testing.T) {
		assert.ErrorIs(t, rules.Required(""), rules.ErrFieldRequired)
	})

	t.Run("fails for whitespace-only value", func(t *testing.T) {
		assert.ErrorIs(t, rules.Required("   \t"), rules.ErrFieldRequired)
	})

	t.Run("passes for padded value with content", func(t *testing.T) {
		assert.NoError(t, rules.Required("  John  "))
	})
}

func TestMinLength(t *testing.T) {
	t.Run("passes at exact boundary", func(t *testing.T) {
		assert.NoError(t, rules.MinLength(3)("abc"))
	})

	t.Run("fails one below boundary", func(t *testing.T) {
		err := rules.MinLength(3)("ab")
		assert.EqualError(t, err, "must be at least 3 characters")
	})

	t.Run("passes above boundary", func(t *testing.T) {
		assert.NoError(t, rules.MinLength(3)("abcd"))
	})

	t.Run("zero minimum accepts empty value", func(t *testing.T) {
		assert.NoError(t, rules.MinLength(0)(""))
	})

	t.Run("message carries the bound", func(t *testing.T) {
		assert.EqualError(t, rules.MinLength(8)("short"), "must be at least 8 characters")
	})
}

func TestNonEmptySelection(t *testing.T) {
	t.Run("fails for empty selection", func(t *testing.T) {
		assert.ErrorIs(t, rules.NonEmptySelection(""), rules.ErrNoSelection)
	})

	t.Run("passes for chosen value", func(t *testing.T) {
		assert.NoError(t, rules.NonEmptySelection("SP"))
	})
}
