package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UpdateBookingInput struct {
	BookingID uint
	UserID    uint

	BarberID uint
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
	Service  string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	audit  *audit.Dispatcher
	tz     string
}

func NewUpdateBooking(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
	tz string,
) *UpdateBooking {
	return &UpdateBooking{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
		tz:     tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute remaneja um agendamento do próprio cliente. As regras são as mesmas
// da criação; o check de conflito ignora o slot atual do registro, então
// "mover" para o mesmo horário é um no-op válido.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Booking, error) {

	// dono primeiro: id inexistente ou de outro cliente → not found
	b, err := uc.repo.GetBookingForUser(ctx, in.BookingID, in.UserID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.tz)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	slot, err := schedule.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.ValidateSlot(barber, date, slot, now); err != nil {
		return nil, err
	}

	b.BarberID = barber.ID
	b.Date = date
	b.Time = slot.String()
	b.Service = in.Service

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err == nil {
		uc.notify.Dispatch(notify.Event{
			Action:        "booking_updated",
			Reference:     b.Reference,
			CustomerName:  user.Name,
			CustomerEmail: user.Email,
			BarberName:    barber.Name,
			Service:       b.Service,
			Date:          b.Date.Format("2006-01-02"),
			Time:          b.Time,
		})
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	b.Barber = *barber
	return b, nil
}
