package bot

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cadastrobot/pkg/models"
	"cadastrobot/pkg/search"
)

var cardNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestDriverCard(t *testing.T) {
	d := models.Driver{
		ID:             "7",
		Nome:           "João <Silva>",
		CPF:            "111.444.777-35",
		Celular:        "(11) 98765-4321",
		DataNascimento: "1990-03-11",
		ValidadeCNH:    "2026-03-01",
		ValidadeCurso:  "2026-03-20",
		Status:         models.StatusAtivo,
	}

	card := driverCard(d, cardNow)

	assert.Contains(t, card, "CNH vencida")
	assert.Contains(t, card, "Curso vence em breve")
	assert.Contains(t, card, "João &lt;Silva&gt;")
	assert.Contains(t, card, "11/03/1990 (35 anos)")
	assert.Contains(t, card, "01/03/2026 (vencido)")
	assert.Contains(t, card, "20/03/2026 (vencendo)")
}

func TestDriverCardWithoutAlerts(t *testing.T) {
	d := models.Driver{ID: "1", Nome: "Ana", CPF: "111.444.777-35", Celular: "(11) 3333-4444", ValidadeCNH: "31/12/2030"}

	card := driverCard(d, cardNow)

	assert.NotContains(t, card, "⚠️")
	assert.NotContains(t, card, "❌")
	assert.Contains(t, card, "31/12/2030 (ok)")
}

func TestDriverSheet(t *testing.T) {
	d := models.Driver{ID: "1", Nome: "Ana", CPF: "111.444.777-35", Celular: "(11) 3333-4444", ValidadeCNH: "2026-01-01"}

	sheet := driverSheet(d, cardNow)

	assert.Contains(t, sheet, "FICHA DO MOTORISTA")
	assert.Contains(t, sheet, "ALERTAS\n- CNH vencida")
	assert.Contains(t, sheet, "Impresso em 10/03/2026")
	assert.NotContains(t, sheet, "<b>")
}

func TestPageOffset(t *testing.T) {
	var drivers []models.Driver
	for i := 0; i < 20; i++ {
		drivers = append(drivers, models.Driver{ID: fmt.Sprint(i), Nome: fmt.Sprintf("Motorista %02d", i)})
	}
	r := search.Result{Kind: search.ResultFound, Drivers: drivers}
	link := func(id string) string { return "http://localhost:5000/motorista/" + id }

	assert.Zero(t, pageOffset(r, 0, link))
	assert.Greater(t, pageOffset(r, 2, link), pageOffset(r, 1, link))
	assert.Greater(t, pageOffset(r, 1, link), 300)
}
