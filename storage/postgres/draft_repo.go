package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
	"cadastrobot/storage"
)

type draftRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewDraftRepo(db *pgxpool.Pool, log logger.ILogger) storage.IDraftStorage {
	return &draftRepo{db: db, log: log}
}

func (r *draftRepo) Get(ctx context.Context, teleID int64) (*models.Draft, error) {
	var (
		draft models.Draft
		form  []byte
		files []byte
	)
	query := `
		SELECT id, telegram_id, state, form, files, return_to_confirm, updated_at
		FROM registration_drafts
		WHERE telegram_id = $1
	`
	err := r.db.QueryRow(ctx, query, teleID).Scan(
		&draft.ID, &draft.TelegramID, &draft.State, &form, &files, &draft.ReturnToConfirm, &draft.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("failed to get draft", logger.Error(err), logger.Int64("telegram_id", teleID))
		return nil, err
	}

	if err := json.Unmarshal(form, &draft.Form); err != nil {
		return nil, err
	}
	if len(files) > 0 {
		if err := json.Unmarshal(files, &draft.Files); err != nil {
			return nil, err
		}
	}
	return &draft, nil
}

func (r *draftRepo) Save(ctx context.Context, draft *models.Draft) error {
	form, err := json.Marshal(draft.Form)
	if err != nil {
		return err
	}
	files, err := json.Marshal(draft.Files)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO registration_drafts (id, telegram_id, state, form, files, return_to_confirm)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (telegram_id) DO UPDATE
		SET id = EXCLUDED.id,
			state = EXCLUDED.state,
			form = EXCLUDED.form,
			files = EXCLUDED.files,
			return_to_confirm = EXCLUDED.return_to_confirm,
			updated_at = NOW()
		RETURNING updated_at
	`
	err = r.db.QueryRow(ctx, query, draft.ID, draft.TelegramID, draft.State, form, files, draft.ReturnToConfirm).
		Scan(&draft.UpdatedAt)
	if err != nil {
		r.log.Error("failed to save draft", logger.Error(err), logger.Int64("telegram_id", draft.TelegramID))
		return err
	}
	return nil
}

func (r *draftRepo) Delete(ctx context.Context, teleID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM registration_drafts WHERE telegram_id=$1", teleID)
	return err
}

func (r *draftRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM registration_drafts")
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
