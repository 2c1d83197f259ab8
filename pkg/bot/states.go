package bot

import (
	"strings"

	"cadastrobot/pkg/models"
)

const (
	StateIdle          = "idle"
	StateNome          = "awaiting_nome"
	StateCPF           = "awaiting_cpf"
	StateCelular       = "awaiting_celular"
	StateNascimento    = "awaiting_data_nascimento"
	StateVinculo       = "awaiting_tipo_vinculo"
	StateValidadeCNH   = "awaiting_validade_cnh"
	StateValidadeCurso = "awaiting_validade_curso"
	StateConfirm       = "awaiting_confirm"

	fileStatePrefix = "awaiting_file_"
)

// registrationSteps is the order the form is filled in.
var registrationSteps = func() []string {
	steps := []string{
		StateNome,
		StateCPF,
		StateCelular,
		StateNascimento,
		StateVinculo,
		StateValidadeCNH,
		StateValidadeCurso,
	}
	for _, slot := range models.UploadSlots {
		steps = append(steps, fileState(slot))
	}
	return append(steps, StateConfirm)
}()

var fieldStates = map[string]string{
	models.FieldNome:           StateNome,
	models.FieldCPF:            StateCPF,
	models.FieldCelular:        StateCelular,
	models.FieldDataNascimento: StateNascimento,
	models.FieldTipoVinculo:    StateVinculo,
	models.FieldValidadeCNH:    StateValidadeCNH,
	models.FieldValidadeCurso:  StateValidadeCurso,
}

func fileState(slot string) string {
	return fileStatePrefix + slot
}

// slotOf returns the upload slot a state waits for, if any.
func slotOf(state string) (string, bool) {
	if !strings.HasPrefix(state, fileStatePrefix) {
		return "", false
	}
	return strings.TrimPrefix(state, fileStatePrefix), true
}

// nextState returns the step after d's current one. A draft being corrected
// goes straight back to confirmation.
func nextState(d *models.Draft) string {
	if d.ReturnToConfirm {
		return StateConfirm
	}
	for i, s := range registrationSteps {
		if s == d.State && i+1 < len(registrationSteps) {
			return registrationSteps[i+1]
		}
	}
	return StateConfirm
}

// skippable steps are the optional ones.
func skippable(state string) bool {
	switch state {
	case StateNascimento, StateValidadeCNH, StateValidadeCurso:
		return true
	}
	_, isFile := slotOf(state)
	return isFile
}

func stepIndex(state string) int {
	for i, s := range registrationSteps {
		if s == state {
			return i
		}
	}
	return -1
}

// reopenSlot puts the draft back on slot's step after the file previewed in
// messageID is removed. A draft already past that step returns to the
// confirmation once the slot is filled again. It reports false when the
// preview is not the one the draft holds for slot, e.g. a button left over
// from a cancelled form.
func reopenSlot(d *models.Draft, slot string, messageID int) bool {
	f, ok := d.Files[slot]
	if !ok || f.PreviewMessageID == 0 || f.PreviewMessageID != messageID {
		return false
	}

	target := fileState(slot)
	if stepIndex(d.State) > stepIndex(target) {
		d.ReturnToConfirm = true
	}
	d.State = target
	return true
}

// canSkip reports whether a skip button sent for step from still applies.
func canSkip(d *models.Draft, from string) bool {
	return d != nil && d.State == from && skippable(from)
}
