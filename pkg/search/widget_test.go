package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
)

type fakeSearcher struct {
	calls   []string
	drivers []models.Driver
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, q string) ([]models.Driver, error) {
	f.calls = append(f.calls, q)
	return f.drivers, f.err
}

func TestSearchEmptyQueryMakesNoRequest(t *testing.T) {
	f := &fakeSearcher{}
	w := NewWidget(f, logger.Nop())

	for _, q := range []string{"", "   ", "\t\n"} {
		r := w.Search(context.Background(), q)
		assert.Equal(t, ResultCleared, r.Kind)
	}
	assert.Empty(t, f.calls)
}

func TestSearchTrimsQuery(t *testing.T) {
	f := &fakeSearcher{drivers: []models.Driver{{ID: "1", Nome: "Ana"}}}
	r := NewWidget(f, logger.Nop()).Search(context.Background(), "  ana ")

	assert.Equal(t, []string{"ana"}, f.calls)
	assert.Equal(t, ResultFound, r.Kind)
	assert.Equal(t, "ana", r.Query)
	assert.Len(t, r.Drivers, 1)
}

func TestSearchNoResults(t *testing.T) {
	f := &fakeSearcher{drivers: []models.Driver{}}
	r := NewWidget(f, logger.Nop()).Search(context.Background(), "zzz")

	assert.Equal(t, ResultEmpty, r.Kind)
	assert.Equal(t, "<i>Nenhum motorista encontrado.</i>", RenderHTML(r, 0, nil))
	assert.Equal(t, MsgNoResults, RenderText(r, nil))
}

func TestSearchFailure(t *testing.T) {
	f := &fakeSearcher{err: errors.New("connection refused")}
	r := NewWidget(f, logger.Nop()).Search(context.Background(), "ana")

	assert.Equal(t, ResultFailed, r.Kind)
	assert.Error(t, r.Err)
	assert.Len(t, f.calls, 1)
	assert.Contains(t, RenderHTML(r, 0, nil), MsgFailed)
}
