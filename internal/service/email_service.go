package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"scamwise-backend/internal/config"
)

type EmailService struct {
	config *config.EmailConfig
}

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{config: cfg}
}

// SendEmail delivers a plain-text message over SMTP. Callers treat failures
// as non-fatal and log them; no user-facing action is aborted by a mail
// problem.
func (e *EmailService) SendEmail(subject, body string, to []string) error {
	if e.config.Host == "" {
		return fmt.Errorf("smtp not configured")
	}

	message := fmt.Appendf(nil, "To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", strings.Join(to, ","), e.config.From, subject, body)

	auth := smtp.PlainAuth("", e.config.Username, e.config.Password, e.config.Host)
	addr := e.config.Host + ":" + e.config.Port

	return smtp.SendMail(addr, auth, e.config.From, to, message)
}
