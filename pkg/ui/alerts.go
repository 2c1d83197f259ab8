package ui

import (
	"time"

	"cadastrobot/pkg/models"
)

// Alert is a message shown on a driver card.
type Alert struct {
	Text  string
	Level Level
}

type parseFunc func(string) (time.Time, error)

// DriverAlerts lists CNH and course expiry alerts for d. Dates that do not
// parse are ignored.
func DriverAlerts(d models.Driver, now time.Time, parse parseFunc) []Alert {
	var alerts []Alert

	docs := []struct {
		value         string
		expired, soon string
	}{
		{d.ValidadeCNH, "CNH vencida", "CNH vence em breve"},
		{d.ValidadeCurso, "Curso vencido", "Curso vence em breve"},
	}

	for _, doc := range docs {
		if doc.value == "" {
			continue
		}
		t, err := parse(doc.value)
		if err != nil {
			continue
		}
		switch DocumentStatus(t, now) {
		case DocExpired:
			alerts = append(alerts, Alert{Text: doc.expired, Level: LevelDanger})
		case DocExpiring:
			alerts = append(alerts, Alert{Text: doc.soon, Level: LevelWarning})
		}
	}
	return alerts
}
