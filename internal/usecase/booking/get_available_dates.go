package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// intervalo máximo aceito numa varredura de datas
const maxScanDays = 92

type GetAvailableDates struct {
	repo domain.Repository
	tz   string
}

func NewGetAvailableDates(repo domain.Repository, tz string) *GetAvailableDates {
	return &GetAvailableDates{repo: repo, tz: tz}
}

// Execute varre [from, to] e devolve as datas em que o barbeiro trabalha e
// ainda tem pelo menos um slot livre. Com barberID nil, devolve a união das
// datas disponíveis de todos os barbeiros ativos.
func (uc *GetAvailableDates) Execute(
	ctx context.Context,
	barberID *uint,
	from time.Time,
	to time.Time,
) ([]string, error) {

	if to.Before(from) {
		return nil, httperr.ErrBusiness("invalid_range")
	}
	if int(to.Sub(from).Hours()/24) > maxScanDays {
		return nil, httperr.ErrBusiness("range_too_large")
	}

	var barbers []models.Barber
	if barberID != nil {
		barber, err := uc.repo.GetBarberByID(ctx, *barberID)
		if err != nil {
			return nil, err
		}
		barbers = []models.Barber{*barber}
	} else {
		all, err := uc.repo.ListActiveBarbers(ctx)
		if err != nil {
			return nil, err
		}
		barbers = all
	}

	now := timezone.NowIn(uc.tz)
	available := make(map[string]bool)

	for _, barber := range barbers {
		if err := uc.scanBarber(ctx, &barber, from, to, now, available); err != nil {
			// na varredura agregada, um barbeiro mal configurado é pulado;
			// consultado diretamente por id, o erro sobe pro cliente
			if barberID == nil && isMisconfigured(err) {
				continue
			}
			return nil, err
		}
	}

	dates := make([]string, 0, len(available))
	for d := range available {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	return dates, nil
}

func isMisconfigured(err error) bool {
	return httperr.IsBusiness(err, "invalid_working_days") ||
		httperr.IsBusiness(err, "invalid_working_window")
}

func (uc *GetAvailableDates) scanBarber(
	ctx context.Context,
	barber *models.Barber,
	from time.Time,
	to time.Time,
	now time.Time,
	available map[string]bool,
) error {

	days, err := schedule.ParseWorkingDays(barber.WorkingDays)
	if err != nil || days.IsEmpty() {
		return httperr.ErrBusiness("invalid_working_days")
	}

	start, end, err := domain.Window(barber)
	if err != nil {
		return err
	}

	bookings, err := uc.repo.ListBookingsForRange(ctx, barber.ID, from, to)
	if err != nil {
		return err
	}

	// reservas agrupadas por dia
	bookedByDate := make(map[string][]schedule.TimeOfDay)
	for _, b := range bookings {
		t, err := schedule.ParseTimeOfDay(b.Time)
		if err != nil {
			continue
		}
		key := b.Date.Format("2006-01-02")
		bookedByDate[key] = append(bookedByDate[key], t)
	}

	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		key := cur.Format("2006-01-02")
		if available[key] {
			continue
		}
		if !days.Contains(cur.Weekday()) {
			continue
		}

		free := schedule.FilterAvailable(
			schedule.Slots(start, end, schedule.SlotDuration),
			bookedByDate[key],
			cur,
			now,
		)
		if len(free) > 0 {
			available[key] = true
		}
	}

	return nil
}
