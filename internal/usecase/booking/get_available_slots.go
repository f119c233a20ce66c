package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetAvailableSlots struct {
	repo domain.Repository
	tz   string
}

func NewGetAvailableSlots(repo domain.Repository, tz string) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo, tz: tz}
}

// Execute devolve os horários livres do barbeiro na data: grade de slots da
// janela de expediente menos os já reservados e, se a data é hoje, menos os
// que já passaram.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]schedule.TimeOfDay, error) {

	barber, err := uc.repo.GetBarberByID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	days, err := schedule.ParseWorkingDays(barber.WorkingDays)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_working_days")
	}
	if !days.Contains(date.Weekday()) {
		return []schedule.TimeOfDay{}, nil
	}

	start, end, err := domain.Window(barber)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsForDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	booked := make([]schedule.TimeOfDay, 0, len(bookings))
	for _, b := range bookings {
		t, err := schedule.ParseTimeOfDay(b.Time)
		if err != nil {
			continue
		}
		booked = append(booked, t)
	}

	now := timezone.NowIn(uc.tz)

	return schedule.FilterAvailable(
		schedule.Slots(start, end, schedule.SlotDuration),
		booked,
		date,
		now,
	), nil
}
