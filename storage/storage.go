package storage

import (
	"context"
	"errors"

	"cadastrobot/pkg/models"
)

var ErrNotFound = errors.New("not found")

type IStorage interface {
	Draft() IDraftStorage
	Ping(ctx context.Context) error
	Close()
}

// IDraftStorage keeps one registration draft per Telegram user.
type IDraftStorage interface {
	Get(ctx context.Context, teleID int64) (*models.Draft, error)
	Save(ctx context.Context, draft *models.Draft) error
	Delete(ctx context.Context, teleID int64) error
	DeleteAll(ctx context.Context) (int64, error)
}
