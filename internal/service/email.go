package service

import (
	"fmt"
	"log"
	"net/smtp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cookai/backend/config"
)

// EmailService sends account emails over SMTP. When SMTP is not configured
// the mail is logged instead, which keeps local development working.
type EmailService struct {
	smtpHost    string
	smtpPort    string
	username    string
	password    string
	fromEmail   string
	appName     string
	backendBase string
}

// NewEmailService creates a new EmailService instance
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		smtpHost:    cfg.SMTPHost,
		smtpPort:    cfg.SMTPPort,
		username:    cfg.SMTPUsername,
		password:    cfg.SMTPPassword,
		fromEmail:   cfg.EmailFrom,
		appName:     "cookai",
		backendBase: cfg.BackendBaseURL,
	}
}

// SendVerificationEmail mails the account activation link for a freshly
// registered user.
func (s *EmailService) SendVerificationEmail(to, username, token string) error {
	caser := cases.Title(language.English)
	subject := fmt.Sprintf("[%s] Please verify your email", caser.String(s.appName))
	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome to %s! Confirm your email address by opening the link below:\n\n%s/api/v1/auth/verify?token=%s\n\nThe link expires in 24 hours.\n",
		username, s.appName, s.backendBase, token,
	)
	return s.send(to, subject, body)
}

func (s *EmailService) send(to, subject, body string) error {
	if s.smtpHost == "" || s.smtpPort == "" {
		log.Printf("SMTP not configured, logging email to %s: %s", to, subject)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		s.fromEmail, to, subject, body)

	addr := s.smtpHost + ":" + s.smtpPort
	auth := smtp.PlainAuth("", s.username, s.password, s.smtpHost)
	return smtp.SendMail(addr, auth, s.fromEmail, []string{to}, []byte(msg))
}
