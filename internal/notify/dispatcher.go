package notify

import (
	"fmt"
	"log"
)

// Evento de agendamento que vira e-mail. Tudo que o worker precisa já vem no
// evento; ele nunca consulta o banco.
type Event struct {
	Action string // booking_created / booking_updated / booking_cancelled

	Reference     string
	CustomerName  string
	CustomerEmail string
	BarberName    string
	Service       string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
}

// Dispatcher desacopla o envio de e-mail do commit do agendamento: o handler
// publica o evento e segue; falha de SMTP é logada e nunca volta pro cliente.
type Dispatcher struct {
	mailer     Mailer
	adminEmail string
	queue      chan Event
}

func NewDispatcher(mailer Mailer, adminEmail string) *Dispatcher {
	d := &Dispatcher{
		mailer:     mailer,
		adminEmail: adminEmail,
		queue:      make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		subject, body := customerMessage(ev)
		if ev.CustomerEmail != "" {
			if err := d.mailer.Send(ev.CustomerEmail, subject, body); err != nil {
				log.Println("notify error (customer):", err)
			}
		}

		if d.adminEmail != "" {
			subject, body = adminMessage(ev)
			if err := d.mailer.Send(d.adminEmail, subject, body); err != nil {
				log.Println("notify error (admin):", err)
			}
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos a notificação (nunca quebrar API)
		log.Println("notify queue full, dropping event")
	}
}

func customerMessage(ev Event) (subject, body string) {
	switch ev.Action {
	case "booking_updated":
		subject = "Seu agendamento foi alterado"
	case "booking_cancelled":
		subject = "Seu agendamento foi cancelado"
	default:
		subject = "Agendamento confirmado"
	}

	body = fmt.Sprintf(
		"Olá %s,\n\n%s\n\nBarbeiro: %s\nServiço: %s\nData: %s às %s\nReferência: %s\n",
		ev.CustomerName,
		subject+".",
		ev.BarberName,
		ev.Service,
		ev.Date,
		ev.Time,
		ev.Reference,
	)
	return subject, body
}

func adminMessage(ev Event) (subject, body string) {
	subject = fmt.Sprintf("[%s] %s — %s %s", ev.Action, ev.BarberName, ev.Date, ev.Time)
	body = fmt.Sprintf(
		"Cliente: %s <%s>\nBarbeiro: %s\nServiço: %s\nData: %s às %s\nReferência: %s\n",
		ev.CustomerName,
		ev.CustomerEmail,
		ev.BarberName,
		ev.Service,
		ev.Date,
		ev.Time,
		ev.Reference,
	)
	return subject, body
}
