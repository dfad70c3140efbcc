package email

import (
	"gopkg.in/gomail.v2"
)

// SMTPConfig holds mail server settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider delivers through an SMTP relay via gomail.
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (p *SMTPProvider) Send(msg *Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	if msg.HTML {
		m.SetBody("text/html", msg.Body)
	} else {
		m.SetBody("text/plain", msg.Body)
	}
	return p.dialer.DialAndSend(m)
}
