package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Regras de domínio do slot
// ===============================

// Window materializa a janela de expediente do barbeiro.
func Window(barber *models.Barber) (start, end schedule.TimeOfDay, err error) {
	start, err = schedule.ParseTimeOfDay(barber.StartTime)
	if err != nil {
		return 0, 0, httperr.ErrBusiness("invalid_working_window")
	}
	end, err = schedule.ParseTimeOfDay(barber.EndTime)
	if err != nil {
		return 0, 0, httperr.ErrBusiness("invalid_working_window")
	}
	if end <= start {
		return 0, 0, httperr.ErrBusiness("invalid_working_window")
	}
	return start, end, nil
}

// ValidateSlot aplica as regras de criação/alteração de um agendamento:
// data não pode estar no passado (hoje vale, desde que o horário ainda não
// tenha passado), o dia precisa ser dia de trabalho do barbeiro, e o horário
// precisa cair exatamente em um slot da janela de expediente.
func ValidateSlot(
	barber *models.Barber,
	date time.Time,
	slot schedule.TimeOfDay,
	now time.Time,
) error {

	if date.Year() < now.Year() ||
		(date.Year() == now.Year() && date.YearDay() < now.YearDay()) {
		return httperr.ErrBusiness("past_date")
	}

	if sameDate(date, now) && slot <= schedule.TimeOfDayOf(now) {
		return httperr.ErrBusiness("past_time")
	}

	days, err := schedule.ParseWorkingDays(barber.WorkingDays)
	if err != nil {
		return httperr.ErrBusiness("invalid_working_days")
	}
	if !days.Contains(date.Weekday()) {
		return httperr.ErrBusiness("not_a_working_day")
	}

	start, end, err := Window(barber)
	if err != nil {
		return err
	}

	// alinhamento exato com a grade
	if slot < start || (int(slot)-int(start))%int(schedule.SlotDuration/time.Minute) != 0 {
		return httperr.ErrBusiness("outside_working_hours")
	}
	if slot.Add(schedule.SlotDuration) > end {
		return httperr.ErrBusiness("outside_working_hours")
	}

	return nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
