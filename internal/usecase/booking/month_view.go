package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type MonthView struct {
	repo domain.Repository
	tz   string
}

func NewMonthView(repo domain.Repository, tz string) *MonthView {
	return &MonthView{repo: repo, tz: tz}
}

// Execute monta a visão de calendário do cliente: a grade fixa de 35 datas do
// mês (incluindo as pontas dos meses vizinhos) com os agendamentos dele em
// cada dia, mais a navegação de mês anterior/próximo.
func (uc *MonthView) Execute(
	ctx context.Context,
	userID uint,
	year int,
	month int,
) (*dto.CalendarMonthDTO, error) {

	if month < 1 || month > 12 || year < 1 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	loc := timezone.Location(uc.tz)
	grid := schedule.MonthGrid(year, time.Month(month), loc)

	// período coberto pela grade, [início, fim)
	start := grid[0]
	end := grid[len(grid)-1].AddDate(0, 0, 1)

	bookings, err := uc.repo.ListBookingsForUserPeriod(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]dto.CalendarBookingDTO)
	for _, b := range bookings {
		key := b.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], dto.CalendarBookingDTO{
			ID:         b.ID,
			Reference:  b.Reference,
			Time:       b.Time,
			Service:    b.Service,
			BarberName: b.Barber.Name,
		})
	}

	days := make([]dto.CalendarDayDTO, 0, len(grid))
	for _, d := range grid {
		key := d.Format("2006-01-02")
		days = append(days, dto.CalendarDayDTO{
			Date:     key,
			InMonth:  d.Month() == time.Month(month),
			Bookings: byDate[key],
		})
	}

	prevYear, prevMonth := schedule.PrevMonth(year, time.Month(month))
	nextYear, nextMonth := schedule.NextMonth(year, time.Month(month))

	return &dto.CalendarMonthDTO{
		Year:      year,
		Month:     month,
		PrevYear:  prevYear,
		PrevMonth: int(prevMonth),
		NextYear:  nextYear,
		NextMonth: int(nextMonth),
		Days:      days,
	}, nil
}
