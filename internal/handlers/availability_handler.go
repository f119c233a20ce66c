package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	slotsUC *ucBooking.GetAvailableSlots
	datesUC *ucBooking.GetAvailableDates
	cache   *cache.Availability
	tz      string
}

func NewAvailabilityHandler(
	slotsUC *ucBooking.GetAvailableSlots,
	datesUC *ucBooking.GetAvailableDates,
	availCache *cache.Availability,
	tz string,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		slotsUC: slotsUC,
		datesUC: datesUC,
		cache:   availCache,
		tz:      tz,
	}
}

// ======================================================
// GET /api/availability/slots?barber_id=&date=
// ======================================================

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	dateStr := c.Query("date")
	date, err := parseDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	if slots, ok := h.cache.GetSlots(c.Request.Context(), uint(barberID), dateStr); ok {
		c.JSON(200, gin.H{"available_slots": slots})
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "availability_error", "Erro ao calcular disponibilidade.")
		}
		return
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}

	h.cache.SetSlots(c.Request.Context(), uint(barberID), dateStr, out)

	c.JSON(200, gin.H{"available_slots": out})
}

// ======================================================
// GET /api/availability/dates?barber_id=&from=&to=
// ======================================================

// barber_id é opcional: sem ele a resposta é a união das datas disponíveis
// de todos os barbeiros ativos.
func (h *AvailabilityHandler) Dates(c *gin.Context) {
	var barberID *uint
	if raw := c.Query("barber_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
		v := uint(id)
		barberID = &v
	}

	from, err := parseDate(h.tz, c.Query("from"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inicial inválida.")
		return
	}

	to, err := parseDate(h.tz, c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data final inválida.")
		return
	}

	dates, err := h.datesUC.Execute(c.Request.Context(), barberID, from, to)
	if err != nil {
		if !writeBusinessError(c, err) {
			httperr.Internal(c, "availability_error", "Erro ao calcular disponibilidade.")
		}
		return
	}

	c.JSON(200, gin.H{"available_dates": dates})
}
