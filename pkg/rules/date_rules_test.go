package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/formguard/formguard/pkg/rules"
)

func TestBirthDate(t *testing.T) {
	now := time.Now()

	t.Run("passes an adult born 30 years ago", func(t *testing.T) {
		dob := now.AddDate(-30, 0, 0).Format("2006-01-02")
		assert.NoError(t, rules.BirthDate(dob))
	})

	t.Run("passes day-month-year layout", func(t *testing.T) {
		dob := now.AddDate(-30, 0, 0).Format("02/01/2006")
		assert.NoError(t, rules.BirthDate(dob))
	})

	t.Run("fails below 18 by year subtraction", func(t *testing.T) {
		dob := now.AddDate(-17, 0, 0).Format("2006-01-02")
		assert.ErrorIs(t, rules.BirthDate(dob), rules.ErrUnderage)
	})

	// Age is year-of-today minus year-of-birth, so someone whose 18th
	// birthday falls later this year already counts as 18.
	t.Run("age check ignores month and day", func(t *testing.T) {
		dob := time.Date(now.Year()-18, 12, 31, 0, 0, 0, 0, time.UTC)
		assert.NoError(t, rules.BirthDate(dob.Format("2006-01-02")))
	})

	t.Run("future date message wins", func(t *testing.T) {
		dob := now.AddDate(1, 0, 0).Format("2006-01-02")
		assert.ErrorIs(t, rules.BirthDate(dob), rules.ErrFutureDate)
	})

	t.Run("fails unparsable value", func(t *testing.T) {
		assert.ErrorIs(t, rules.BirthDate("not-a-date"), rules.ErrInvalidDate)
		assert.ErrorIs(t, rules.BirthDate(""), rules.ErrInvalidDate)
	})
}
