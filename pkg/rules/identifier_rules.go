package rules

// NationalID validates a Brazilian CPF number. The value is normalized by
// stripping all non-digit characters, then checked against the two weighted
// check digits: digit 10 verifies digits 1-9 and digit 11 verifies digits
// 1-10. Sequences of 11 identical digits carry valid checksums but are not
// issued, so they are rejected outright.
func NationalID(value string) error {
	digits := digitsOnly(value)
	if len(digits) != 11 {
		return ErrNationalIDLength
	}

	identical := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			identical = false
			break
		}
	}
	if identical {
		return ErrInvalidNationalID
	}

	if checkDigit(digits, 9) != int(digits[9]-'0') {
		return ErrInvalidNationalID
	}
	if checkDigit(digits, 10) != int(digits[10]-'0') {
		return ErrInvalidNationalID
	}
	return nil
}

// checkDigit computes the CPF check digit over the first n digits, with
// weights descending from n+1 to 2. Remainders of 10 and 11 collapse to 0.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	rem := (sum * 10) % 11
	if rem >= 10 {
		rem = 0
	}
	return rem
}
