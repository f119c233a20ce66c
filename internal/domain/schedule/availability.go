package schedule

import (
	"iter"
	"time"
)

// FilterAvailable aplica o filtro de disponibilidade sobre a grade de slots:
// remove horários já reservados (igualdade exata de horário) e, quando a data
// pedida é o dia corrente, horários no passado ou em andamento. Datas
// anteriores a hoje não têm disponibilidade.
//
// Função pura: mesmo input, mesmo output, sem efeito colateral.
func FilterAvailable(
	slots iter.Seq[TimeOfDay],
	booked []TimeOfDay,
	date time.Time,
	now time.Time,
) []TimeOfDay {

	if beforeDay(date, now) {
		return []TimeOfDay{}
	}

	taken := make(map[TimeOfDay]bool, len(booked))
	for _, b := range booked {
		taken[b] = true
	}

	sameDay := sameDate(date, now)
	cutoff := TimeOfDayOf(now)

	out := make([]TimeOfDay, 0)
	for s := range slots {
		if taken[s] {
			continue
		}
		if sameDay && s <= cutoff {
			continue
		}
		out = append(out, s)
	}

	return out
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// beforeDay compara só a parte de data (ignora horário)
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
