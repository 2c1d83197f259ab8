package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"cadastrobot/pkg/models"
)

const minNameLength = 2

// Messages shown next to a rejected field.
const (
	MsgNomeCurto      = "Nome deve ter pelo menos 2 caracteres"
	MsgCPFInvalido    = "CPF inválido"
	MsgCelularInvalid = "Número de celular inválido"
	MsgDataInvalida   = "Data inválida"

	// MsgCorrigirErros blocks a submission that has field errors.
	MsgCorrigirErros = "Por favor, corrija os erros no formulário antes de continuar."
)

var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// fieldOrder is the order errors are reported in.
var fieldOrder = []string{
	models.FieldNome,
	models.FieldCPF,
	models.FieldCelular,
	models.FieldDataNascimento,
	models.FieldValidadeCNH,
	models.FieldValidadeCurso,
}

// FormErrors maps a field name to its error message.
type FormErrors map[string]string

func (e FormErrors) OK() bool { return len(e) == 0 }

// Fields returns the failing field names in form order.
func (e FormErrors) Fields() []string {
	out := make([]string, 0, len(e))
	for _, f := range fieldOrder {
		if _, ok := e[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// ValidateForm checks every field and collects all failures; it never stops
// at the first one.
func ValidateForm(form models.RegistrationForm) FormErrors {
	errs := FormErrors{}

	if !ValidName(form.Nome) {
		errs[models.FieldNome] = MsgNomeCurto
	}
	if !ValidCPF(form.CPF) {
		errs[models.FieldCPF] = MsgCPFInvalido
	}
	if !ValidPhone(form.Celular) {
		errs[models.FieldCelular] = MsgCelularInvalid
	}

	optionalDates := map[string]string{
		models.FieldDataNascimento: form.DataNascimento,
		models.FieldValidadeCNH:    form.ValidadeCNH,
		models.FieldValidadeCurso:  form.ValidadeCurso,
	}
	for field, value := range optionalDates {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if _, err := ParseDate(value); err != nil {
			errs[field] = MsgDataInvalida
		}
	}

	return errs
}

// ValidName reports whether the trimmed, NFC-normalised name has at least two
// characters.
func ValidName(name string) bool {
	name = strings.TrimSpace(norm.NFC.String(name))
	return utf8.RuneCountInString(name) >= minNameLength
}

// ParseDate accepts ISO dates (as the server stores them) and dd/mm/yyyy as
// people type them.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// NormalizeDate rewrites a parsable date in the server's YYYY-MM-DD layout.
// Empty input stays empty.
func NormalizeDate(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}
