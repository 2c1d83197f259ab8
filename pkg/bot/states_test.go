package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
	"cadastrobot/service"
	"cadastrobot/storage/memory"
)

func TestNextStateWalksTheForm(t *testing.T) {
	d := &models.Draft{State: StateNome}
	var visited []string
	for d.State != StateConfirm {
		d.State = nextState(d)
		visited = append(visited, d.State)
	}

	assert.Equal(t, []string{
		StateCPF,
		StateCelular,
		StateNascimento,
		StateVinculo,
		StateValidadeCNH,
		StateValidadeCurso,
		"awaiting_file_foto",
		"awaiting_file_cnh",
		"awaiting_file_curso_passageiro",
		"awaiting_file_comprovante_residencia",
		StateConfirm,
	}, visited)
}

func TestNextStateReturnsToConfirm(t *testing.T) {
	d := &models.Draft{State: StateCPF, ReturnToConfirm: true}
	assert.Equal(t, StateConfirm, nextState(d))
}

func TestSlotOf(t *testing.T) {
	slot, ok := slotOf(fileState(models.SlotCNH))
	assert.True(t, ok)
	assert.Equal(t, models.SlotCNH, slot)

	_, ok = slotOf(StateCPF)
	assert.False(t, ok)
}

func TestSkippable(t *testing.T) {
	assert.True(t, skippable(StateValidadeCNH))
	assert.True(t, skippable(fileState(models.SlotFoto)))
	assert.False(t, skippable(StateNome))
	assert.False(t, skippable(StateCPF))
}

func previewed(slot string, messageID int) *models.Draft {
	d := &models.Draft{ID: "d1", TelegramID: 42, State: fileState(models.SlotCursoPassageiro)}
	d.SetFile(slot, models.StoredFile{
		FileInfo:         models.FileInfo{Name: "cnh.pdf", MIME: "application/pdf", Size: 1024},
		RemoteID:         "tg-file",
		PreviewMessageID: messageID,
		PreviewChatID:    42,
	})
	return d
}

func TestReopenSlotReturnsToRemovedStep(t *testing.T) {
	d := previewed(models.SlotCNH, 100)

	assert.True(t, reopenSlot(d, models.SlotCNH, 100))
	assert.Equal(t, fileState(models.SlotCNH), d.State)
	assert.True(t, d.ReturnToConfirm)

	// once the slot is filled again the form goes back to confirmation
	assert.Equal(t, StateConfirm, nextState(d))
}

func TestReopenSlotOnCurrentStep(t *testing.T) {
	d := previewed(models.SlotCNH, 100)
	d.State = fileState(models.SlotCNH)

	assert.True(t, reopenSlot(d, models.SlotCNH, 100))
	assert.False(t, d.ReturnToConfirm)
	assert.Equal(t, fileState(models.SlotCursoPassageiro), nextState(d))
}

func TestReopenSlotIgnoresStaleButtons(t *testing.T) {
	d := previewed(models.SlotCNH, 100)
	state := d.State

	assert.False(t, reopenSlot(d, models.SlotCNH, 99), "preview of an older draft")
	assert.False(t, reopenSlot(d, models.SlotFoto, 100), "slot without a file")
	assert.Equal(t, state, d.State)
	assert.False(t, d.ReturnToConfirm)
	assert.Contains(t, d.Files, models.SlotCNH)
}

func TestRemovePreviewPersistsReopenedSlot(t *testing.T) {
	ctx := context.Background()
	stg := memory.New()
	svc := service.New(stg, nil, logger.Nop()).Registration()

	d := previewed(models.SlotCNH, 100)
	d.State = StateConfirm
	require.NoError(t, svc.Save(ctx, d))

	require.True(t, reopenSlot(d, models.SlotCNH, 100))
	_, removed, err := svc.RemoveFile(ctx, d, models.SlotCNH)
	require.NoError(t, err)
	assert.True(t, removed)

	got, err := svc.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, fileState(models.SlotCNH), got.State)
	assert.True(t, got.ReturnToConfirm)
	assert.NotContains(t, got.Files, models.SlotCNH)
}

func TestCanSkipOnlyItsOwnStep(t *testing.T) {
	d := &models.Draft{State: StateValidadeCurso}

	assert.True(t, canSkip(d, StateValidadeCurso))
	assert.False(t, canSkip(d, StateNascimento), "button from an earlier step")
	assert.False(t, canSkip(&models.Draft{State: StateCPF}, StateCPF))
	assert.False(t, canSkip(nil, StateValidadeCurso))
}
