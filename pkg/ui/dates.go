package ui

import (
	"math"
	"time"
)

// ExpiryWarningDays is how far ahead a document counts as expiring.
const ExpiryWarningDays = 30

type DocStatus string

const (
	DocOK       DocStatus = "ok"
	DocExpiring DocStatus = "vencendo"
	DocExpired  DocStatus = "vencido"
)

// FormatDate renders t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// CalculateAge returns completed years between birth and now.
func CalculateAge(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// IsDocumentExpiring reports whether validity falls within the next days
// days. The day difference is rounded up, so anything later today counts as
// one day away.
func IsDocumentExpiring(validity, now time.Time, days int) bool {
	diff := int(math.Ceil(validity.Sub(now).Hours() / 24))
	return diff > 0 && diff <= days
}

func IsDocumentExpired(validity, now time.Time) bool {
	return validity.Before(now)
}

// DocumentStatus compares calendar days, as the driver list does: a document
// valid until today is still ok-or-expiring, not expired.
func DocumentStatus(validity, now time.Time) DocStatus {
	return DocumentStatusWithin(validity, now, ExpiryWarningDays)
}

// DocumentStatusWithin is DocumentStatus with a warning window of days.
func DocumentStatusWithin(validity, now time.Time, days int) DocStatus {
	today := truncateDay(now)
	v := truncateDay(validity)
	switch {
	case IsDocumentExpired(v, today):
		return DocExpired
	case v.Equal(today), IsDocumentExpiring(v, today, days):
		return DocExpiring
	default:
		return DocOK
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
