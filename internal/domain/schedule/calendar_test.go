package schedule

import (
	"testing"
	"time"
)

func TestMonthGrid_March2024(t *testing.T) {
	// março/2024 começa numa sexta; a grade recua até o domingo 25/02
	grid := MonthGrid(2024, time.March, time.UTC)

	if len(grid) != 35 {
		t.Fatalf("expected 35 dates, got %d", len(grid))
	}

	first := grid[0]
	if first.Year() != 2024 || first.Month() != time.February || first.Day() != 25 {
		t.Errorf("first date = %v, want 2024-02-25", first.Format("2006-01-02"))
	}
	if first.Weekday() != time.Sunday {
		t.Errorf("grid must start on Sunday, got %v", first.Weekday())
	}

	last := grid[len(grid)-1]
	if last.Format("2006-01-02") != "2024-03-30" {
		t.Errorf("last date = %v, want 2024-03-30", last.Format("2006-01-02"))
	}

	// datas consecutivas, sem buracos
	for i := 1; i < len(grid); i++ {
		if !grid[i].Equal(grid[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("gap between %v and %v", grid[i-1], grid[i])
		}
	}
}

func TestMonthGrid_MonthStartingOnSunday(t *testing.T) {
	// setembro/2024 começa num domingo: sem recuo
	grid := MonthGrid(2024, time.September, time.UTC)

	if grid[0].Format("2006-01-02") != "2024-09-01" {
		t.Errorf("first date = %v, want 2024-09-01", grid[0].Format("2006-01-02"))
	}
}

func TestMonthWeeks_March2024(t *testing.T) {
	// 31/03 cai num domingo, forçando a sexta semana
	weeks := MonthWeeks(2024, time.March, time.UTC)

	if len(weeks) != 6 {
		t.Fatalf("expected 6 weeks, got %d", len(weeks))
	}
	for i, w := range weeks {
		if len(w) != 7 {
			t.Fatalf("week %d has %d days", i, len(w))
		}
		if w[0].Weekday() != time.Sunday {
			t.Errorf("week %d starts on %v", i, w[0].Weekday())
		}
	}

	lastWeek := weeks[len(weeks)-1]
	if lastWeek[0].Format("2006-01-02") != "2024-03-31" {
		t.Errorf("last week starts at %v, want 2024-03-31", lastWeek[0].Format("2006-01-02"))
	}
}

func TestMonthWeeks_FiveWeekMonth(t *testing.T) {
	// junho/2024: 01/06 é sábado, 30/06 é domingo → 6 semanas; usa abril
	// (01/04 segunda, 30/04 terça) → 5 semanas
	weeks := MonthWeeks(2024, time.April, time.UTC)

	if len(weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(weeks))
	}
}

func TestPrevNextMonth(t *testing.T) {
	if y, m := PrevMonth(2024, time.January); y != 2023 || m != time.December {
		t.Errorf("PrevMonth(2024, Jan) = %d/%v", y, m)
	}
	if y, m := NextMonth(2024, time.December); y != 2025 || m != time.January {
		t.Errorf("NextMonth(2024, Dec) = %d/%v", y, m)
	}
	if y, m := PrevMonth(2024, time.March); y != 2024 || m != time.February {
		t.Errorf("PrevMonth(2024, Mar) = %d/%v", y, m)
	}
	if y, m := NextMonth(2024, time.March); y != 2024 || m != time.April {
		t.Errorf("NextMonth(2024, Mar) = %d/%v", y, m)
	}
}
