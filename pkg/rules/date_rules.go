package rules

import "time"

// Accepted birth-date layouts: ISO from a native date input, day/month/year
// from a masked text input.
var birthDateLayouts = []string{"2006-01-02", "02/01/2006"}

// BirthDate fails when the date yields an age below 18 or lies in the
// future. Age is a naive year subtraction: someone turning 18 later this
// year already passes. Both checks run; for a future date the future-date
// message wins over the (necessarily co-occurring) underage one.
func BirthDate(value string) error {
	dob, ok := parseBirthDate(value)
	if !ok {
		return ErrInvalidDate
	}

	now := time.Now()
	var err error
	if now.Year()-dob.Year() < 18 {
		err = ErrUnderage
	}
	if dob.After(now) {
		err = ErrFutureDate
	}
	return err
}

func parseBirthDate(value string) (time.Time, bool) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
