package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

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

type CreateBookingInput struct {
	UserID uint

	BarberID uint
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
	Service  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	audit  *audit.Dispatcher
	tz     string
}

func NewCreateBooking(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
		tz:     tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora no fuso da barbearia
	// --------------------------------------------------
	loc := timezone.Location(uc.tz)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	slot, err := schedule.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2️⃣ Barbeiro
	// --------------------------------------------------
	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Regras de slot (passado / dia / janela / grade)
	// --------------------------------------------------
	now := timezone.NowIn(uc.tz)
	if err := domain.ValidateSlot(barber, date, slot, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Cliente (dono do agendamento)
	// --------------------------------------------------
	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Persistência (conflito resolvido na transação)
	// --------------------------------------------------
	b := &models.Booking{
		Reference: uuid.NewString(),
		UserID:    user.ID,
		BarberID:  barber.ID,
		Date:      date,
		Time:      slot.String(),
		Service:   in.Service,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Pós-commit: notificação + auditoria (best-effort)
	// --------------------------------------------------
	uc.notify.Dispatch(notify.Event{
		Action:        "booking_created",
		Reference:     b.Reference,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
		BarberName:    barber.Name,
		Service:       b.Service,
		Date:          b.Date.Format("2006-01-02"),
		Time:          b.Time,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	b.Barber = *barber
	return b, nil
}
