package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/novaclaw/agency-api/internal/entity"
)

// SMTPNotifier is the fallback for deployments without a Resend key,
// delivering the same operator email over plain SMTP.
type SMTPNotifier struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewSMTPNotifier(host string, port int, user, password, from, to string) *SMTPNotifier {
	return &SMTPNotifier{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

func (s *SMTPNotifier) NotifyNewLead(lead *entity.Lead, revisit bool) error {
	if s.To == "" {
		return fmt.Errorf("notification recipient not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", leadSubject(lead, revisit))
	m.SetBody("text/plain", formatLeadEmail(lead, revisit))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send lead notification over SMTP: %w", err)
	}

	return nil
}
