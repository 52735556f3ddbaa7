package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	FromEmail    string
	FromName     string
	ResetBaseURL string
}

// SMTPProvider sends mail over plain SMTP with optional PLAIN auth.
type SMTPProvider struct {
	config *SMTPConfig
	auth   smtp.Auth
}

func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}
	return &SMTPProvider{config: config, auth: auth}
}

func (p *SMTPProvider) Send(msg *Message) error {
	if p.config.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}

	from := p.config.FromEmail
	if p.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", p.config.FromName, p.config.FromEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.Body)

	addr := fmt.Sprintf("%s:%d", p.config.Host, p.config.Port)
	return smtp.SendMail(addr, p.auth, p.config.FromEmail, []string{msg.To}, []byte(b.String()))
}

func (p *SMTPProvider) SendPasswordReset(to, token string) error {
	body := fmt.Sprintf(
		"You requested a password reset.\n\nOpen the link below within one hour:\n%s?token=%s\n\nIf you did not request this, ignore this email.",
		p.config.ResetBaseURL, token,
	)
	return p.Send(&Message{
		To:      to,
		Subject: "Password reset",
		Body:    body,
	})
}
