package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

type CalendarHandler struct {
	monthUC *ucBooking.MonthView
}

func NewCalendarHandler(monthUC *ucBooking.MonthView) *CalendarHandler {
	return &CalendarHandler{monthUC: monthUC}
}

// GET /api/calendar?year=&month=
func (h *CalendarHandler) Month(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	view, err := h.monthUC.Execute(c.Request.Context(), userID, year, month)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "calendar_error", "Erro ao montar calendário.")
		}
		return
	}

	c.JSON(200, view)
}
