package notify

import (
	"fmt"
	"net/smtp"
)

type Mailer interface {
	Send(to string, subject string, body string) error
}

// SMTPMailer envia e-mail por SMTP sem autenticação (Mailpit em dev, relay
// interno em produção).
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.from,
		to,
		subject,
		body,
	)
	return smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg))
}
