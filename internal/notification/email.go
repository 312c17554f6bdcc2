// Package notification delivers best-effort email about reassignment
// outcomes. Delivery failures are the caller's to log; they never roll back
// a committed decision.
package notification

import (
	"fmt"
	"net/smtp"

	"github.com/jaribu/attendance-api/internal/config"
)

// SMTPSender sends plain-text mail through a single SMTP relay.
type SMTPSender struct {
	conf *config.MailConfig
}

func NewSMTPSender(conf *config.MailConfig) *SMTPSender {
	return &SMTPSender{
		conf: conf,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	addr := s.conf.Host + ":" + s.conf.Port
	auth := smtp.PlainAuth("", s.conf.Username, s.conf.Password, s.conf.Host)

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.conf.Sender, to, subject, body))

	if err := smtp.SendMail(addr, auth, s.conf.Sender, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp.SendMail -> %w", err)
	}

	return nil
}

// NoopSender is used when mail is disabled in config.
type NoopSender struct{}

func (NoopSender) Send(_, _, _ string) error {
	return nil
}
