// Package memory is an in-process storage used when no database is
// configured and by tests.
package memory

import (
	"context"
	"sync"
	"time"

	"cadastrobot/pkg/models"
	"cadastrobot/storage"
)

type Store struct {
	drafts *draftRepo
}

func New() *Store {
	return &Store{drafts: &draftRepo{items: make(map[int64]models.Draft)}}
}

func (s *Store) Draft() storage.IDraftStorage { return s.drafts }

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() {}

type draftRepo struct {
	mu    sync.RWMutex
	items map[int64]models.Draft
}

func (r *draftRepo) Get(_ context.Context, teleID int64) (*models.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[teleID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cloneDraft(d), nil
}

func (r *draftRepo) Save(_ context.Context, draft *models.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	draft.UpdatedAt = time.Now()
	r.items[draft.TelegramID] = *cloneDraft(*draft)
	return nil
}

func (r *draftRepo) Delete(_ context.Context, teleID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, teleID)
	return nil
}

func (r *draftRepo) DeleteAll(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.items))
	r.items = make(map[int64]models.Draft)
	return n, nil
}

// cloneDraft copies the files map so callers never share it with the store.
func cloneDraft(d models.Draft) *models.Draft {
	if d.Files != nil {
		files := make(map[string]models.StoredFile, len(d.Files))
		for k, v := range d.Files {
			files[k] = v
		}
		d.Files = files
	}
	return &d
}
