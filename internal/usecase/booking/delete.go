package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

type DeleteBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	audit  *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditor *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:   repo,
		notify: notifier,
		audit:  auditor,
	}
}

// Execute remove um agendamento do próprio cliente. Id inexistente, já
// removido ou de outro dono → booking_not_found.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
) error {

	b, err := uc.repo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteBookingForUser(ctx, bookingID, userID); err != nil {
		return err
	}

	if user, err := uc.repo.GetUserByID(ctx, userID); err == nil {
		uc.notify.Dispatch(notify.Event{
			Action:        "booking_cancelled",
			Reference:     b.Reference,
			CustomerName:  user.Name,
			CustomerEmail: user.Email,
			BarberName:    b.Barber.Name,
			Service:       b.Service,
			Date:          b.Date.Format("2006-01-02"),
			Time:          b.Time,
		})
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}
