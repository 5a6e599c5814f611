package wizard

import "strings"

// digitsOnly strips everything but ASCII digits.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidNationalID checks the 10-digit national identifier using the mod-11
// check-digit scheme. All-identical digit strings are a known degenerate
// pattern and are rejected outright.
func ValidNationalID(code string) bool {
	digits := digitsOnly(code)
	if len(digits) != 10 {
		return false
	}

	identical := true
	for i := 1; i < 10; i++ {
		if digits[i] != digits[0] {
			identical = false
			break
		}
	}
	if identical {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	check := int(digits[9] - '0')
	r := sum % 11
	if r < 2 {
		return check == r
	}
	return check == 11-r
}

// NormalizePhone strips non-digits and restores the leading zero of a mobile
// number entered without one. Inputs starting with neither "0" nor "9" are
// passed through untouched and left to fail ValidPhone.
func NormalizePhone(raw string) string {
	digits := digitsOnly(raw)
	if digits == "" {
		return digits
	}
	switch digits[0] {
	case '0':
		return digits
	case '9':
		return "0" + digits
	default:
		return digits
	}
}

// ValidPhone reports whether the normalized number is a well-formed mobile
// number: exactly 11 digits beginning with "09".
func ValidPhone(raw string) bool {
	n := NormalizePhone(raw)
	return len(n) == 11 && strings.HasPrefix(n, "09")
}

// ValidAge accepts ages in the inclusive range [1, 120].
func ValidAge(age int) bool {
	return age >= 1 && age <= 120
}

// ValidInsurance: declaring no insurance is always valid; a declared
// insurance needs a trimmed type of at least two characters.
func ValidInsurance(hasInsurance bool, insuranceType string) bool {
	if !hasInsurance {
		return true
	}
	return len([]rune(strings.TrimSpace(insuranceType))) >= 2
}
