// File: /services/email_service.go
package services

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(host string, port int, username, password, from string) *EmailService {
	return &EmailService{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendWelcomeEmail greets a freshly registered account. Failures are
// logged, not returned: registration must not hinge on SMTP health.
func (s *EmailService) SendWelcomeEmail(to, login string) {
	if s == nil || to == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to PulseNet")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account is ready. Follow people you care about and your feed will fill up.</p>
	`, login))

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", to, err)
	}
}
