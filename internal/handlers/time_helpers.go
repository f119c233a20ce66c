package handlers

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// parse de datas de query string, sempre no fuso da barbearia
func parseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}
