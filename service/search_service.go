package service

import (
	"context"

	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/search"
)

type SearchService interface {
	Search(ctx context.Context, query string) search.Result
	DriverURL(id string) string
	SetStatus(ctx context.Context, id, status string) (string, error)
}

type searchService struct {
	widget *search.Widget
	client ServerClient
}

func NewSearchService(client ServerClient, log logger.ILogger) SearchService {
	return &searchService{
		widget: search.NewWidget(client, log),
		client: client,
	}
}

func (s *searchService) Search(ctx context.Context, query string) search.Result {
	return s.widget.Search(ctx, query)
}

func (s *searchService) DriverURL(id string) string {
	return s.client.DriverURL(id)
}

func (s *searchService) SetStatus(ctx context.Context, id, status string) (string, error) {
	return s.client.SetStatus(ctx, id, status)
}
