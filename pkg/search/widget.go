// Package search runs driver lookups against the registration server and
// renders the result list.
package search

import (
	"context"
	"strings"

	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
)

// Texts shown in place of the results.
const (
	MsgLoading   = "Buscando..."
	MsgNoResults = "Nenhum motorista encontrado."
	MsgFailed    = "Erro ao realizar busca."
)

type Kind int

const (
	// ResultCleared: the query was blank, nothing was requested and the
	// results area should be emptied.
	ResultCleared Kind = iota
	ResultEmpty
	ResultFound
	ResultFailed
)

type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Driver, error)
}

type Result struct {
	Kind    Kind
	Query   string
	Drivers []models.Driver
	Err     error
}

type Widget struct {
	client Searcher
	log    logger.ILogger
}

func NewWidget(client Searcher, log logger.ILogger) *Widget {
	return &Widget{client: client, log: log}
}

// Search trims the query and asks the server. Failures are logged and
// reported as ResultFailed; there is no retry.
func (w *Widget) Search(ctx context.Context, query string) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{Kind: ResultCleared}
	}

	drivers, err := w.client.Search(ctx, query)
	if err != nil {
		w.log.Error("Erro na busca", logger.String("query", query), logger.Error(err))
		return Result{Kind: ResultFailed, Query: query, Err: err}
	}
	if len(drivers) == 0 {
		return Result{Kind: ResultEmpty, Query: query}
	}
	return Result{Kind: ResultFound, Query: query, Drivers: drivers}
}
