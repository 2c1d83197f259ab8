package validation

import (
	"regexp"
	"strings"
)

// MaskedCPFLength is the length of a complete xxx.xxx.xxx-xx value.
const MaskedCPFLength = 14

const phoneMaxDigits = 11

var phonePattern = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)

// FieldState mirrors the valid/invalid styling of a form field.
type FieldState int

const (
	FieldNeutral FieldState = iota
	FieldValid
	FieldInvalid
)

func (s FieldState) String() string {
	switch s {
	case FieldValid:
		return "is-valid"
	case FieldInvalid:
		return "is-invalid"
	default:
		return ""
	}
}

// MaskCPF formats raw input as xxx.xxx.xxx-xx, as far as the typed digits go.
// Digits past the eleventh are dropped.
func MaskCPF(raw string) string {
	d := DigitsOnly(raw)
	if len(d) > cpfLength {
		d = d[:cpfLength]
	}

	var b strings.Builder
	for i := 0; i < len(d); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// LiveCPF masks the input and, once it is complete, reports whether it holds
// a valid CPF. Incomplete input is neutral.
func LiveCPF(raw string) (string, FieldState) {
	masked := MaskCPF(raw)
	if len(masked) != MaskedCPFLength {
		return masked, FieldNeutral
	}
	if ValidCPF(masked) {
		return masked, FieldValid
	}
	return masked, FieldInvalid
}

// MaskPhone formats raw input as (xx) xxxx-xxxx, or (xx) xxxxx-xxxx once an
// eleventh digit is typed.
func MaskPhone(raw string) string {
	d := DigitsOnly(raw)
	if len(d) > phoneMaxDigits {
		d = d[:phoneMaxDigits]
	}
	if len(d) <= 2 {
		return d
	}

	split := 4
	if len(d) > 10 {
		split = 5
	}

	area, rest := d[:2], d[2:]
	if len(rest) > split {
		rest = rest[:split] + "-" + rest[split:]
	}
	return "(" + area + ") " + rest
}

// FormatPhone formats complete 10 or 11 digit numbers and returns anything
// else as bare digits.
func FormatPhone(raw string) string {
	d := DigitsOnly(raw)
	switch len(d) {
	case 10, 11:
		return MaskPhone(d)
	default:
		return d
	}
}

// ValidPhone reports whether s is a fully masked phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
