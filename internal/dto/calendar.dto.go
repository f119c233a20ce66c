package dto

type CalendarBookingDTO struct {
	ID         uint   `json:"id"`
	Reference  string `json:"reference"`
	Time       string `json:"time"`
	Service    string `json:"service"`
	BarberName string `json:"barber_name"`
}

type CalendarDayDTO struct {
	Date     string               `json:"date"`
	InMonth  bool                 `json:"in_month"`
	Bookings []CalendarBookingDTO `json:"bookings"`
}

type CalendarMonthDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	PrevYear  int `json:"prev_year"`
	PrevMonth int `json:"prev_month"`
	NextYear  int `json:"next_year"`
	NextMonth int `json:"next_month"`

	// grade fixa 5×7 partindo do domingo anterior ao dia 1
	Days []CalendarDayDTO `json:"days"`
}
