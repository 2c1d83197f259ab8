package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastrobot/pkg/models"
)

func TestValidateFormValid(t *testing.T) {
	errs := ValidateForm(models.RegistrationForm{
		Nome:        "Ana",
		CPF:         "111.444.777-35",
		Celular:     "(11) 98765-4321",
		ValidadeCNH: "31/12/2030",
	})
	assert.True(t, errs.OK())
}

func TestValidateFormReportsEveryField(t *testing.T) {
	errs := ValidateForm(models.RegistrationForm{
		Nome:    " A ",
		CPF:     "111.111.111-11",
		Celular: "11987654321",
	})

	require.False(t, errs.OK())
	assert.Equal(t, []string{models.FieldNome, models.FieldCPF, models.FieldCelular}, errs.Fields())
	assert.Equal(t, MsgNomeCurto, errs[models.FieldNome])
	assert.Equal(t, MsgCPFInvalido, errs[models.FieldCPF])
	assert.Equal(t, MsgCelularInvalid, errs[models.FieldCelular])
}

func TestValidateFormDates(t *testing.T) {
	errs := ValidateForm(models.RegistrationForm{
		Nome:           "José",
		CPF:            "11144477735",
		Celular:        "(11) 3333-4444",
		DataNascimento: "1990-02-30",
		ValidadeCurso:  "2026-05-01",
	})
	assert.Equal(t, []string{models.FieldDataNascimento}, errs.Fields())
}

func TestValidNameCountsRunes(t *testing.T) {
	assert.True(t, ValidName("Zé"))
	assert.False(t, ValidName("  É  "))
	assert.False(t, ValidName(""))
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("05/03/1985")
	require.NoError(t, err)
	assert.Equal(t, "1985-03-05", got)

	got, err = NormalizeDate("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = NormalizeDate("ontem")
	assert.Error(t, err)
}
