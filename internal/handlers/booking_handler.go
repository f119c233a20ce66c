package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db *gorm.DB

	createUC *ucBooking.CreateBooking
	updateUC *ucBooking.UpdateBooking
	deleteUC *ucBooking.DeleteBooking

	cache *cache.Availability
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBooking,
	deleteUC *ucBooking.DeleteBooking,
	availCache *cache.Availability,
) *BookingHandler {
	return &BookingHandler{
		db:       db,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		cache:    availCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingRequest struct {
	BarberID uint   `json:"barber" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
	Service  string `json:"service" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:   userID,
		BarberID: req.BarberID,
		Date:     req.Date,
		Time:     req.TimeSlot,
		Service:  req.Service,
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_create_booking", "Erro ao criar agendamento.")
		}
		return
	}

	h.cache.Invalidate(c.Request.Context(), b.BarberID, b.Date.Format("2006-01-02"))

	c.JSON(201, b)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Agendamento inválido.")
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// slot antigo, pra invalidar o cache dos dois lados da mudança
	var prev models.Booking
	hadPrev := h.db.
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&prev).Error == nil

	b, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		BookingID: uint(bookingID),
		UserID:    userID,
		BarberID:  req.BarberID,
		Date:      req.Date,
		Time:      req.TimeSlot,
		Service:   req.Service,
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_update_booking", "Erro ao alterar agendamento.")
		}
		return
	}

	if hadPrev {
		h.cache.Invalidate(c.Request.Context(), prev.BarberID, prev.Date.Format("2006-01-02"))
	}
	h.cache.Invalidate(c.Request.Context(), b.BarberID, b.Date.Format("2006-01-02"))

	c.JSON(200, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Agendamento inválido.")
		return
	}

	var prev models.Booking
	hadPrev := h.db.
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&prev).Error == nil

	if err := h.deleteUC.Execute(c.Request.Context(), uint(bookingID), userID); err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "failed_to_delete_booking", "Erro ao cancelar agendamento.")
		}
		return
	}

	if hadPrev {
		h.cache.Invalidate(c.Request.Context(), prev.BarberID, prev.Date.Format("2006-01-02"))
	}

	c.JSON(200, gin.H{"status": "deleted"})
}

// ======================================================
// LIST (meus agendamentos)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var bookings []models.Booking
	if err := h.db.
		Preload("Barber").
		Where("user_id = ?", userID).
		Order("date ASC, time ASC").
		Find(&bookings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, bookings)
}
