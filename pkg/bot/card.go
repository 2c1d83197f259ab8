package bot

import (
	"fmt"
	"html"
	"strings"
	"time"

	"cadastrobot/pkg/models"
	"cadastrobot/pkg/ui"
	"cadastrobot/pkg/validation"
)

type cardLine struct {
	label, value string
}

// cardLines renders the driver fields with dates as dd/mm/yyyy and the
// age and document status next to them.
func cardLines(d models.Driver, now time.Time) []cardLine {
	lines := []cardLine{
		{"Nome", d.Nome},
		{"CPF", d.CPF},
		{"Celular", d.Celular},
	}

	if t, err := validation.ParseDate(d.DataNascimento); err == nil && d.DataNascimento != "" {
		lines = append(lines, cardLine{"Nascimento", fmt.Sprintf("%s (%d anos)", ui.FormatDate(t), ui.CalculateAge(t, now))})
	}
	if d.TipoVinculo != "" {
		lines = append(lines, cardLine{"Vínculo", d.TipoVinculo})
	}
	for _, doc := range []cardLine{{"Validade CNH", d.ValidadeCNH}, {"Validade curso", d.ValidadeCurso}} {
		if doc.value == "" {
			continue
		}
		t, err := validation.ParseDate(doc.value)
		if err != nil {
			lines = append(lines, doc)
			continue
		}
		lines = append(lines, cardLine{doc.label, fmt.Sprintf("%s (%s)", ui.FormatDate(t), ui.DocumentStatus(t, now))})
	}
	if d.Status != "" {
		lines = append(lines, cardLine{"Status", d.Status})
	}
	if d.DataCadastro != "" {
		lines = append(lines, cardLine{"Cadastro", d.DataCadastro})
	}
	return lines
}

// driverCard is the chat view of one driver, alerts first.
func driverCard(d models.Driver, now time.Time) string {
	var sb strings.Builder
	for _, a := range ui.DriverAlerts(d, now, validation.ParseDate) {
		sb.WriteString(html.EscapeString(ui.Decorate(a.Text, a.Level)) + "\n")
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	for _, l := range cardLines(d, now) {
		fmt.Fprintf(&sb, "<b>%s:</b> %s\n", l.label, html.EscapeString(l.value))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// driverSheet is the printable plain-text version of driverCard.
func driverSheet(d models.Driver, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("FICHA DO MOTORISTA\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n\n")
	for _, l := range cardLines(d, now) {
		fmt.Fprintf(&sb, "%-16s %s\n", l.label+":", l.value)
	}
	if alerts := ui.DriverAlerts(d, now, validation.ParseDate); len(alerts) > 0 {
		sb.WriteString("\nALERTAS\n")
		for _, a := range alerts {
			sb.WriteString("- " + a.Text + "\n")
		}
	}
	fmt.Fprintf(&sb, "\nImpresso em %s\n", ui.FormatDate(now))
	return sb.String()
}
