package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastrobot/pkg/models"
	"cadastrobot/storage"
)

func TestDraftLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := New().Draft()

	_, err := repo.Get(ctx, 7)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	d := &models.Draft{ID: "d1", TelegramID: 7, State: "awaiting_nome"}
	d.SetFile(models.SlotFoto, models.StoredFile{RemoteID: "f1"})
	require.NoError(t, repo.Save(ctx, d))
	assert.False(t, d.UpdatedAt.IsZero())

	got, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "awaiting_nome", got.State)
	assert.Equal(t, "f1", got.Files[models.SlotFoto].RemoteID)

	// mutating the returned copy must not leak into the store
	got.RemoveFile(models.SlotFoto)
	again, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.Contains(t, again.Files, models.SlotFoto)

	require.NoError(t, repo.Delete(ctx, 7))
	_, err = repo.Get(ctx, 7)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := New().Draft()
	require.NoError(t, repo.Save(ctx, &models.Draft{TelegramID: 1}))
	require.NoError(t, repo.Save(ctx, &models.Draft{TelegramID: 2}))

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
