package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const layoutDate = "2006-01-02"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) ListActiveBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Booking (leitura)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "barber_id", "date", "time").
		Where("barber_id = ? AND date = ?", barberID, date.Format(layoutDate)).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForRange(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "barber_id", "date", "time").
		Where(
			"barber_id = ? AND date >= ? AND date <= ?",
			barberID,
			from.Format(layoutDate),
			to.Format(layoutDate),
		).
		Order("date ASC, time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// registro de outro dono também é "não encontrado"
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForUserPeriod(
	ctx context.Context,
	userID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Barber").
		Where(
			"user_id = ? AND date >= ? AND date < ?",
			userID,
			start.Format(layoutDate),
			end.Format(layoutDate),
		).
		Order("date ASC, time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking (escrita / conflito)
// --------------------------------------------------

// SELECT ... FOR UPDATE só existe no Postgres; o SQLite dos testes
// serializa a escrita na própria transação
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CreateBooking faz o check-then-write dentro de uma transação com lock
// FOR UPDATE; o índice único idx_barber_slot cobre a corrida entre duas
// transações simultâneas — a perdedora recebe unique violation, traduzida
// para time_conflict.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := lockForUpdate(tx).
			Model(&models.Booking{}).
			Where(
				"barber_id = ? AND date = ? AND time = ?",
				b.BarberID,
				b.Date.Format(layoutDate),
				b.Time,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Omit(clause.Associations).Create(b).Error
	})

	if isUniqueViolation(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := lockForUpdate(tx).
			Model(&models.Booking{}).
			Where(
				"barber_id = ? AND date = ? AND time = ? AND id <> ?",
				b.BarberID,
				b.Date.Format(layoutDate),
				b.Time,
				b.ID,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		// o registro pode vir de GetBookingForUser com Barber pré-carregado;
		// gravar a associação junto faria o belongs-to reescrever barber_id
		// com a chave do barbeiro antigo
		return tx.Omit(clause.Associations).Save(b).Error
	})

	if isUniqueViolation(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *BookingGormRepository) DeleteBookingForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, userID).
		Delete(&models.Booking{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("booking_not_found")
	}
	return nil
}

// unique violation do Postgres (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
