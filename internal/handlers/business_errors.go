package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// mensagens por código de erro de negócio
var businessMessages = map[string]string{
	"invalid_date_or_time":   "Data ou hora inválida.",
	"past_date":              "A data informada já passou.",
	"past_time":              "O horário informado já passou.",
	"not_a_working_day":      "O barbeiro não atende nesse dia.",
	"outside_working_hours":  "Fora do horário de atendimento.",
	"invalid_working_window": "Expediente do barbeiro mal configurado.",
	"invalid_working_days":   "Dias de trabalho do barbeiro mal configurados.",
	"invalid_range":          "Intervalo de datas inválido.",
	"range_too_large":        "Intervalo de datas grande demais.",
	"invalid_month":          "Mês inválido.",
	"time_conflict":          "Horário já reservado.",
	"booking_not_found":      "Agendamento não encontrado.",
	"barber_not_found":       "Barbeiro não encontrado.",
	"user_not_found":         "Usuário não encontrado.",
}

// writeBusinessError traduz um BusinessError para a resposta HTTP:
// conflito → 409, não encontrado → 404, o resto → 400. Devolve false se o
// erro não é de negócio (caller trata como 500).
func writeBusinessError(c *gin.Context, err error) bool {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		return false
	}

	msg, ok := businessMessages[be.Code]
	if !ok {
		msg = "Requisição inválida."
	}

	switch be.Code {
	case "time_conflict":
		httperr.Conflict(c, be.Code, msg)
	case "booking_not_found", "barber_not_found", "user_not_found":
		httperr.NotFound(c, be.Code, msg)
	default:
		httperr.BadRequest(c, be.Code, msg)
	}
	return true
}
