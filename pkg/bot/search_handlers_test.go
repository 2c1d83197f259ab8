package bot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cadastrobot/pkg/models"
	"cadastrobot/pkg/search"
)

func withResults(drivers ...models.Driver) *Bot {
	return &Bot{results: map[int64]*searchView{
		1: {result: search.Result{Kind: search.ResultFound, Drivers: drivers}},
	}}
}

func TestFindDriver(t *testing.T) {
	b := withResults(models.Driver{ID: "7", Nome: "Ana"})

	d, miss := b.findDriver(1, "7")
	require.Empty(t, miss)
	assert.Equal(t, "Ana", d.Nome)

	_, miss = b.findDriver(1, "8")
	assert.Equal(t, "driver_missing", miss)
	assert.NotEmpty(t, msg(miss))

	_, miss = b.findDriver(2, "7")
	assert.Equal(t, "search_expired", miss)
}

func TestSetDriverStatusReturnsCopy(t *testing.T) {
	b := withResults(models.Driver{ID: "7", Nome: "Ana", Status: models.StatusAtivo})

	d, ok := b.setDriverStatus(1, "7", models.StatusInativo)
	require.True(t, ok)
	assert.Equal(t, models.StatusInativo, d.Status)

	// later updates do not reach a copy already handed out
	_, ok = b.setDriverStatus(1, "7", models.StatusAtivo)
	require.True(t, ok)
	assert.Equal(t, models.StatusInativo, d.Status)

	cached, _ := b.findDriver(1, "7")
	assert.Equal(t, models.StatusAtivo, cached.Status)

	_, ok = b.setDriverStatus(2, "7", models.StatusAtivo)
	assert.False(t, ok)
}

func TestDriverStatusConcurrentAccess(t *testing.T) {
	b := withResults(models.Driver{ID: "7", Nome: "Ana", Status: models.StatusAtivo})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			status := models.StatusAtivo
			if i%2 == 0 {
				status = models.StatusInativo
			}
			if d, ok := b.setDriverStatus(1, "7", status); ok {
				_ = driverCard(d, cardNow)
			}
		}(i)
		go func() {
			defer wg.Done()
			if d, miss := b.findDriver(1, "7"); miss == "" {
				_ = driverCard(d, cardNow)
			}
		}()
	}
	wg.Wait()
}
