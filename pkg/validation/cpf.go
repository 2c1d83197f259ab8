// Package validation holds the field rules of the driver registration form:
// CPF check digits, input masks, whole-form validation and upload checks.
package validation

import (
	"errors"
	"strings"
)

const cpfLength = 11

var errCPFBase = errors.New("cpf base must have 9 digits")

// DigitsOnly drops every rune that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ValidCPF reports whether s carries a CPF with correct check digits.
// Punctuation is ignored. Eleven repeated digits are always rejected.
func ValidCPF(s string) bool {
	cpf := DigitsOnly(s)
	if len(cpf) != cpfLength || repeated(cpf) {
		return false
	}

	d1 := checkDigit(cpf[:9], 10)
	if int(cpf[9]-'0') != d1 {
		return false
	}
	d2 := checkDigit(cpf[:10], 11)
	return int(cpf[10]-'0') == d2
}

// CheckDigits computes both verification digits for a 9-digit base.
func CheckDigits(base string) (int, int, error) {
	base = DigitsOnly(base)
	if len(base) != 9 {
		return 0, 0, errCPFBase
	}
	d1 := checkDigit(base, 10)
	d2 := checkDigit(base+string(rune('0'+d1)), 11)
	return d1, d2, nil
}

// checkDigit weights digits from weight down to 2 and maps the mod-11
// remainder to a digit: remainders 0 and 1 give 0.
func checkDigit(digits string, weight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (weight - i)
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

func repeated(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
