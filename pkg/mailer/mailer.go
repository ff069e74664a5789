package mailer

import (
	"fmt"
	"net/smtp"

	"rentsight-backend/pkg/config"
)

// Mailer sends account emails.
type Mailer interface {
	SendVerificationEmail(to, token string) error
}

type smtpMailer struct {
	host     string
	port     string
	from     string
	username string
	password string
	baseURL  string
}

func NewMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		from:     cfg.SMTP.From,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		baseURL:  cfg.Verification.EmailBaseURL,
	}
}

func (m *smtpMailer) SendVerificationEmail(to, token string) error {
	subject := "Verify your RentSight email"
	body := fmt.Sprintf(
		"Welcome to RentSight!\r\n\r\nOpen the link below to verify your email address:\r\n\r\n%s?token=%s\r\n\r\nThe link expires in 20 minutes. If you did not create an account, ignore this email.",
		m.baseURL, token,
	)
	return m.send(to, subject, body)
}

func (m *smtpMailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}
