package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"cadastrobot/pkg/api"
	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
	"cadastrobot/pkg/validation"
	"cadastrobot/storage"
)

// FileFetcher opens a file kept in a draft, e.g. by downloading it from
// Telegram.
type FileFetcher interface {
	Open(ctx context.Context, f models.StoredFile) (io.ReadCloser, error)
}

// ErrInvalidForm is returned by Submit when field validation fails; the
// accompanying FormErrors say which fields.
var ErrInvalidForm = errors.New("registration form has errors")

type RegistrationService interface {
	Start(ctx context.Context, teleID int64, state string) (*models.Draft, error)
	Get(ctx context.Context, teleID int64) (*models.Draft, error)
	Save(ctx context.Context, draft *models.Draft) error
	Cancel(ctx context.Context, teleID int64) error
	AttachFile(ctx context.Context, draft *models.Draft, slot string, file models.StoredFile) error
	RemoveFile(ctx context.Context, draft *models.Draft, slot string) (models.StoredFile, bool, error)
	Validate(draft *models.Draft) validation.FormErrors
	Submit(ctx context.Context, draft *models.Draft, fetcher FileFetcher) (string, validation.FormErrors, error)
}

type registrationService struct {
	stg    storage.IDraftStorage
	client ServerClient
	log    logger.ILogger
}

func NewRegistrationService(stg storage.IStorage, client ServerClient, log logger.ILogger) RegistrationService {
	return &registrationService{
		stg:    stg.Draft(),
		client: client,
		log:    log,
	}
}

// Start replaces any previous draft of teleID with an empty one.
func (s *registrationService) Start(ctx context.Context, teleID int64, state string) (*models.Draft, error) {
	draft := &models.Draft{
		ID:         uuid.NewString(),
		TelegramID: teleID,
		State:      state,
		Form:       models.RegistrationForm{TipoVinculo: models.VinculoRegistrado},
	}
	if err := s.stg.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Get returns the draft of teleID, or nil when there is none.
func (s *registrationService) Get(ctx context.Context, teleID int64) (*models.Draft, error) {
	draft, err := s.stg.Get(ctx, teleID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return draft, err
}

func (s *registrationService) Save(ctx context.Context, draft *models.Draft) error {
	return s.stg.Save(ctx, draft)
}

func (s *registrationService) Cancel(ctx context.Context, teleID int64) error {
	return s.stg.Delete(ctx, teleID)
}

// AttachFile validates the upload before keeping it. A rejected file also
// clears whatever the slot held before.
func (s *registrationService) AttachFile(ctx context.Context, draft *models.Draft, slot string, file models.StoredFile) error {
	if err := validation.ValidateFile(file.FileInfo); err != nil {
		draft.RemoveFile(slot)
		if serr := s.stg.Save(ctx, draft); serr != nil {
			return serr
		}
		s.log.Info("upload rejected", logger.String("slot", slot), logger.Error(err))
		return err
	}

	draft.SetFile(slot, file)
	return s.stg.Save(ctx, draft)
}

func (s *registrationService) RemoveFile(ctx context.Context, draft *models.Draft, slot string) (models.StoredFile, bool, error) {
	f, ok := draft.RemoveFile(slot)
	if !ok {
		return f, false, nil
	}
	return f, true, s.stg.Save(ctx, draft)
}

func (s *registrationService) Validate(draft *models.Draft) validation.FormErrors {
	return validation.ValidateForm(draft.Form)
}

// Submit validates the whole form and, if it is clean, posts it with its
// files. The draft is dropped once the server accepts it.
func (s *registrationService) Submit(ctx context.Context, draft *models.Draft, fetcher FileFetcher) (string, validation.FormErrors, error) {
	if errs := s.Validate(draft); !errs.OK() {
		return "", errs, ErrInvalidForm
	}

	form, err := normalizeForm(draft.Form)
	if err != nil {
		return "", nil, err
	}

	var attachments []api.Attachment
	defer func() {
		for _, a := range attachments {
			if c, ok := a.Body.(io.Closer); ok {
				c.Close()
			}
		}
	}()

	for _, slot := range models.UploadSlots {
		f, ok := draft.Files[slot]
		if !ok {
			continue
		}
		body, err := fetcher.Open(ctx, f)
		if err != nil {
			return "", nil, fmt.Errorf("open %s: %w", slot, err)
		}
		attachments = append(attachments, api.Attachment{Field: slot, File: f.FileInfo, Body: body})
	}

	id, err := s.client.Register(ctx, form, attachments)
	if err != nil {
		s.log.Error("Erro ao cadastrar motorista", logger.String("draft_id", draft.ID), logger.Error(err))
		return "", nil, err
	}

	if err := s.stg.Delete(ctx, draft.TelegramID); err != nil {
		s.log.Warning("failed to drop submitted draft", logger.String("draft_id", draft.ID), logger.Error(err))
	}
	s.log.Info("Motorista cadastrado", logger.String("driver_id", id), logger.Int("files", len(attachments)))
	return id, nil, nil
}

// normalizeForm converts typed dates to the server's layout.
func normalizeForm(form models.RegistrationForm) (models.RegistrationForm, error) {
	dates := []*string{&form.DataNascimento, &form.ValidadeCNH, &form.ValidadeCurso}
	for _, d := range dates {
		v, err := validation.NormalizeDate(*d)
		if err != nil {
			return form, err
		}
		*d = v
	}
	return form, nil
}
