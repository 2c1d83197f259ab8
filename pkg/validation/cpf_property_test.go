//go:build property

package validation

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCPFProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1144)
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	base := gen.IntRange(0, 999999999).Map(func(n int) string {
		return fmt.Sprintf("%09d", n)
	})

	properties.Property("completed bases validate unless repeated", prop.ForAll(
		func(b string) bool {
			d1, d2, err := CheckDigits(b)
			if err != nil {
				return false
			}
			cpf := fmt.Sprintf("%s%d%d", b, d1, d2)
			return ValidCPF(cpf) != repeated(cpf)
		},
		base,
	))

	properties.Property("changing the last digit invalidates", prop.ForAll(
		func(b string, delta int) bool {
			d1, d2, _ := CheckDigits(b)
			wrong := (d2 + delta) % 10
			return !ValidCPF(fmt.Sprintf("%s%d%d", b, d1, wrong))
		},
		base,
		gen.IntRange(1, 9),
	))

	properties.Property("mask round-trips digits", prop.ForAll(
		func(b string) bool {
			d1, d2, _ := CheckDigits(b)
			cpf := fmt.Sprintf("%s%d%d", b, d1, d2)
			masked := MaskCPF(cpf)
			return len(masked) == MaskedCPFLength && DigitsOnly(masked) == cpf
		},
		base,
	))

	properties.TestingRun(t)
}
