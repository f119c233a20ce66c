package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay é um horário do dia em minutos desde 00:00.
// Todo horário de slot ("09:00", "16:30") vive nesse tipo durante o cálculo
// de disponibilidade; só vira string "HH:MM" na borda HTTP.
type TimeOfDay int

const layoutHM = "15:04"

// ParseTimeOfDay converte "HH:MM" (24h) em TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(layoutHM, s)
	if err != nil {
		return 0, fmt.Errorf("horário inválido %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayOf extrai o horário do dia de um time.Time.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// At ancora o horário na data informada, preservando a localização dela.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}

// Add desloca o horário em d, truncado para minutos.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}
