package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type BarberRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	WorkingDays    string `json:"working_days" binding:"required"`
	Active         *bool  `json:"active"`
}

// validateWindow rejeita janela invertida e códigos de dia desconhecidos na
// configuração — o cálculo de slots assume barbeiro bem configurado.
func validateWindow(req *BarberRequest) (string, bool) {
	start, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return "invalid_start_time", false
	}
	end, err := schedule.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return "invalid_end_time", false
	}
	if end <= start {
		return "invalid_working_window", false
	}

	days, err := schedule.ParseWorkingDays(req.WorkingDays)
	if err != nil || days.IsEmpty() {
		return "invalid_working_days", false
	}

	return "", true
}

// ======================================================
// PUBLIC
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// ADMIN
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if code, ok := validateWindow(&req); !ok {
		httperr.BadRequest(c, code, "Configuração de expediente inválida.")
		return
	}

	days, _ := schedule.ParseWorkingDays(req.WorkingDays)

	barber := models.Barber{
		Name:           req.Name,
		Specialization: req.Specialization,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		WorkingDays:    days.String(), // forma canônica
		Active:         true,
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if code, ok := validateWindow(&req); !ok {
		httperr.BadRequest(c, code, "Configuração de expediente inválida.")
		return
	}

	days, _ := schedule.ParseWorkingDays(req.WorkingDays)

	barber.Name = req.Name
	barber.Specialization = req.Specialization
	barber.StartTime = req.StartTime
	barber.EndTime = req.EndTime
	barber.WorkingDays = days.String()
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	// agendamentos do barbeiro caem junto (FK em cascata)
	res := h.db.Delete(&models.Barber{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
