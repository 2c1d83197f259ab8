package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid digits", "11144477735", true},
		{"valid masked", "111.444.777-35", true},
		{"second valid", "52998224725", true},
		{"repeated digits", "11111111111", false},
		{"all zeros", "00000000000", false},
		{"ten digits", "1114447773", false},
		{"twelve digits", "111444777350", false},
		{"wrong first digit", "11144477745", false},
		{"wrong second digit", "11144477736", false},
		{"empty", "", false},
		{"letters only", "abc.def.ghi-jk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCPF(tt.in))
		})
	}
}

func TestCheckDigits(t *testing.T) {
	d1, d2, err := CheckDigits("111444777")
	require.NoError(t, err)
	assert.Equal(t, 3, d1)
	assert.Equal(t, 5, d2)

	_, _, err = CheckDigits("1234")
	assert.Error(t, err)
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "11987654321", DigitsOnly("(11) 98765-4321"))
	assert.Equal(t, "", DigitsOnly("abc"))
}
