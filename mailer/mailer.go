package mailer

import (
	"Prescryber/config"

	gomail "gopkg.in/gomail.v2"
)

const fromAddress = `"Prescryber" <prescriber@support.com>`

// Sender delivers a single HTML notification.
type Sender interface {
	Send(to string, subject string, htmlBody string) error
}

// SMTPSender sends mail through the configured SMTP account.
type SMTPSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg config.Config) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailID, cfg.EmailPassword),
	}
}

func (s *SMTPSender) Send(to string, subject string, htmlBody string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", fromAddress)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(message)
}
