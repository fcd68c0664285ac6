package rules

import "errors"

// Fixed failure messages for the built-in rules. The message text is what
// gets rendered next to the field, so the wording is part of the contract.
var (
	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidEmail is returned when a value is not a plausible e-mail address.
	ErrInvalidEmail = errors.New("invalid e-mail format")

	// ErrNationalIDLength is returned when a national ID does not normalize to 11 digits.
	ErrNationalIDLength = errors.New("must have 11 digits")

	// ErrInvalidNationalID is returned when a national ID fails the checksum.
	ErrInvalidNationalID = errors.New("invalid national ID number")

	// ErrPhoneLength is returned when a phone number has the wrong digit count.
	ErrPhoneLength = errors.New("must have 10 or 11 digits")

	// ErrPostalCodeLength is returned when a postal code has the wrong digit count.
	ErrPostalCodeLength = errors.New("must have 8 digits")

	// ErrUnderage is returned when a birth date yields an age below 18.
	ErrUnderage = errors.New("must be at least 18 years old")

	// ErrFutureDate is returned when a birth date lies after today.
	ErrFutureDate = errors.New("cannot be in the future")

	// ErrInvalidDate is returned when a birth date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNoSelection is returned when a mandatory selection is left empty.
	ErrNoSelection = errors.New("please choose a value")
)
