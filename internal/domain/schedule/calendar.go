package schedule

import "time"

// A grade do calendário começa no domingo, como no site original.
const gridWeekStart = time.Sunday

// MonthGrid monta a grade fixa de 5×7 datas do mês: recua até o domingo
// anterior (ou igual) ao dia 1 e preenche 35 células corridas, incluindo
// dias dos meses vizinhos.
func MonthGrid(year int, month time.Month, loc *time.Location) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := (int(first.Weekday()) - int(gridWeekStart) + 7) % 7
	start := first.AddDate(0, 0, -offset)

	grid := make([]time.Time, 0, 35)
	for i := 0; i < 35; i++ {
		grid = append(grid, start.AddDate(0, 0, i))
	}
	return grid
}

// MonthWeeks é o modo variável: semanas completas (5 ou 6) que cobrem o mês
// inteiro, do domingo anterior ao dia 1 até o sábado após o último dia.
func MonthWeeks(year int, month time.Month, loc *time.Location) [][]time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := (int(first.Weekday()) - int(gridWeekStart) + 7) % 7
	start := first.AddDate(0, 0, -offset)

	last := first.AddDate(0, 1, -1)

	var weeks [][]time.Time
	for cur := start; !cur.After(last); {
		week := make([]time.Time, 0, 7)
		for i := 0; i < 7; i++ {
			week = append(week, cur)
			cur = cur.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// PrevMonth / NextMonth dão os identificadores de navegação do calendário.

func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
