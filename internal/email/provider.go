// Package email delivers the out-of-band messages the API never echoes
// back: password-reset links in particular leave the system only through
// here.
package email

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

type Provider interface {
	Send(msg *Message) error
	// SendPasswordReset delivers the one-time reset token to the account
	// owner.
	SendPasswordReset(to, token string) error
}
