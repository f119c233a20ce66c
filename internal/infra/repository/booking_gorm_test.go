package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Barber{},
		&models.Booking{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	if err := db.Create(&models.User{
		ID: 1, Username: "joao", Name: "João", Email: "joao@example.com", PasswordHash: "x",
	}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	barbers := []models.Barber{
		{ID: 1, Name: "Carlos", StartTime: "09:00", EndTime: "17:00", WorkingDays: "Mon,Tue,Wed,Thu,Fri", Active: true},
		{ID: 2, Name: "Pedro", StartTime: "10:00", EndTime: "14:00", WorkingDays: "Mon,Tue,Wed,Thu,Fri", Active: true},
	}
	if err := db.Create(&barbers).Error; err != nil {
		t.Fatalf("seed barbers: %v", err)
	}
}

func newBooking(barberID uint, slot string) *models.Booking {
	return &models.Booking{
		Reference: "ref-" + slot,
		UserID:    1,
		BarberID:  barberID,
		Date:      time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC),
		Time:      slot,
		Service:   "Corte",
	}
}

// Remanejar um agendamento para outro barbeiro precisa persistir o novo
// barber_id mesmo com o registro vindo de GetBookingForUser com a associação
// Barber pré-carregada do barbeiro antigo.
func TestUpdateBooking_MovesToAnotherBarber(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)

	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	b := newBooking(1, "10:00")
	if err := repo.CreateBooking(ctx, b); err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := repo.GetBookingForUser(ctx, b.ID, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Barber.ID != 1 {
		t.Fatalf("expected preloaded barber 1, got %d", loaded.Barber.ID)
	}

	loaded.BarberID = 2
	loaded.Time = "11:00"
	if err := repo.UpdateBooking(ctx, loaded); err != nil {
		t.Fatalf("update: %v", err)
	}

	var got models.Booking
	if err := db.First(&got, b.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.BarberID != 2 {
		t.Fatalf("barber change not persisted: barber_id = %d, want 2", got.BarberID)
	}
	if got.Time != "11:00" {
		t.Errorf("time = %s, want 11:00", got.Time)
	}

	var barber models.Barber
	if err := db.First(&barber, 2).Error; err != nil {
		t.Fatalf("reload barber: %v", err)
	}
	if barber.Name != "Pedro" {
		t.Errorf("barber row clobbered: name = %s", barber.Name)
	}
}

func TestGetBookingForUser_Ownership(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)

	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	b := newBooking(1, "10:00")
	if err := repo.CreateBooking(ctx, b); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.GetBookingForUser(ctx, b.ID, 99); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found for other owner, got %v", err)
	}
}

func TestDeleteBookingForUser(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)

	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	b := newBooking(1, "10:00")
	if err := repo.CreateBooking(ctx, b); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.DeleteBookingForUser(ctx, b.ID, 99); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found for other owner, got %v", err)
	}

	if err := repo.DeleteBookingForUser(ctx, b.ID, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := repo.DeleteBookingForUser(ctx, b.ID, 1); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found after delete, got %v", err)
	}
}
