package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Barber --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	ListActiveBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	// -------- Booking (leitura) --------
	ListBookingsForDay(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.Booking, error)

	ListBookingsForRange(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	GetBookingForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	ListBookingsForUserPeriod(
		ctx context.Context,
		userID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Booking (escrita / conflito) --------
	// CreateBooking e UpdateBooking fazem o check-then-write transacional do
	// slot (barbeiro, data, horário) e devolvem time_conflict quando o slot
	// já está ocupado. Update exclui o próprio registro do check.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBookingForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) error
}
