// Package validate checks user-supplied contact and document fields.
// Phone, CEP and CPF follow Brazilian formats.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\(?\d{2}\)?\s?)?(\d{4,5})[-\s]?(\d{4})$`)
	cepPattern   = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	digitPattern = regexp.MustCompile(`\D`)
)

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Phone reports whether s is a valid phone number, with or without an area
// code.
func Phone(s string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(s, " ", ""))
}

// CEP reports whether s is a valid postal code.
func CEP(s string) bool {
	return cepPattern.MatchString(s)
}

// CPF reports whether s is a valid CPF, verifying both check digits.
func CPF(s string) bool {
	digits := digitPattern.ReplaceAllString(s, "")
	if len(digits) != 11 {
		return false
	}
	if allSame(digits) {
		return false
	}

	if checkDigit(digits, 9) != int(digits[9]-'0') {
		return false
	}
	return checkDigit(digits, 10) == int(digits[10]-'0')
}

// Required reports whether s has any non-whitespace content.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// checkDigit computes the CPF check digit over the first n digits.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		return 0
	}
	return remainder
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
