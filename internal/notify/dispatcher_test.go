package notify

import (
	"strings"
	"testing"
	"time"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type captureMailer struct {
	sent chan sentMail
}

func (m *captureMailer) Send(to, subject, body string) error {
	m.sent <- sentMail{to: to, subject: subject, body: body}
	return nil
}

func waitMail(t *testing.T, ch chan sentMail) sentMail {
	t.Helper()
	select {
	case m := <-ch:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mail")
		return sentMail{}
	}
}

func TestDispatch_SendsCustomerAndAdminMail(t *testing.T) {
	mailer := &captureMailer{sent: make(chan sentMail, 4)}
	d := NewDispatcher(mailer, "admin@example.com")

	d.Dispatch(Event{
		Action:        "booking_created",
		Reference:     "ref-123",
		CustomerName:  "João",
		CustomerEmail: "joao@example.com",
		BarberName:    "Carlos",
		Service:       "Corte",
		Date:          "2030-01-07",
		Time:          "10:00",
	})

	customer := waitMail(t, mailer.sent)
	if customer.to != "joao@example.com" {
		t.Errorf("customer mail to = %s", customer.to)
	}
	if customer.subject != "Agendamento confirmado" {
		t.Errorf("customer subject = %s", customer.subject)
	}
	if !strings.Contains(customer.body, "ref-123") || !strings.Contains(customer.body, "Carlos") {
		t.Errorf("customer body missing details:\n%s", customer.body)
	}

	admin := waitMail(t, mailer.sent)
	if admin.to != "admin@example.com" {
		t.Errorf("admin mail to = %s", admin.to)
	}
	if !strings.Contains(admin.subject, "booking_created") {
		t.Errorf("admin subject = %s", admin.subject)
	}
	if !strings.Contains(admin.body, "joao@example.com") {
		t.Errorf("admin body missing customer email:\n%s", admin.body)
	}
}

func TestDispatch_SkipsCustomerWithoutEmail(t *testing.T) {
	mailer := &captureMailer{sent: make(chan sentMail, 4)}
	d := NewDispatcher(mailer, "admin@example.com")

	d.Dispatch(Event{
		Action:       "booking_cancelled",
		CustomerName: "Maria",
		BarberName:   "Carlos",
		Date:         "2030-01-07",
		Time:         "11:00",
	})

	m := waitMail(t, mailer.sent)
	if m.to != "admin@example.com" {
		t.Fatalf("expected only the admin mail, got one for %s", m.to)
	}

	select {
	case extra := <-mailer.sent:
		t.Fatalf("unexpected extra mail to %s", extra.to)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDispatch_SubjectPerAction(t *testing.T) {
	tests := []struct {
		action  string
		subject string
	}{
		{"booking_created", "Agendamento confirmado"},
		{"booking_updated", "Seu agendamento foi alterado"},
		{"booking_cancelled", "Seu agendamento foi cancelado"},
	}

	for _, tt := range tests {
		subject, _ := customerMessage(Event{Action: tt.action})
		if subject != tt.subject {
			t.Errorf("%s: subject = %s, want %s", tt.action, subject, tt.subject)
		}
	}
}
