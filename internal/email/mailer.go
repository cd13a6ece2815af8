package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Message is one outbound mail.
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
}

// Mailer is the outbound transport consumed by the notification dispatcher.
type Mailer interface {
	Send(m *Message) error
}

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// GomailSender delivers messages over SMTP.
type GomailSender struct {
	cfg Config
}

func NewGomailSender(cfg Config) *GomailSender {
	return &GomailSender{cfg: cfg}
}

func (s *GomailSender) Send(m *Message) error {
	if len(m.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	msg.SetHeader("To", m.To...)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTMLBody)

	d := gomail.NewDialer(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.SMTPUser,
		s.cfg.SMTPPassword,
	)

	return d.DialAndSend(msg)
}
