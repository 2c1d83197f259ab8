package service

import (
	"context"

	"cadastrobot/pkg/api"
	"cadastrobot/pkg/models"
)

// ServerClient is the part of the registration server the services use.
type ServerClient interface {
	Search(ctx context.Context, query string) ([]models.Driver, error)
	Register(ctx context.Context, form models.RegistrationForm, files []api.Attachment) (string, error)
	SetStatus(ctx context.Context, id, status string) (string, error)
	DriverURL(id string) string
}

var _ ServerClient = (*api.Client)(nil)
