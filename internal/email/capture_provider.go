package email

import "sync"

// CaptureProvider records messages instead of sending them. Used in tests
// and when no SMTP host is configured.
type CaptureProvider struct {
	mu       sync.Mutex
	Messages []Message
}

func NewCaptureProvider() *CaptureProvider {
	return &CaptureProvider{}
}

func (p *CaptureProvider) Send(msg *Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Messages = append(p.Messages, *msg)
	return nil
}

func (p *CaptureProvider) SendPasswordReset(to, token string) error {
	return p.Send(&Message{
		To:      to,
		Subject: "Password reset",
		Body:    token,
	})
}

// Sent returns a copy of everything captured so far.
func (p *CaptureProvider) Sent() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Message, len(p.Messages))
	copy(out, p.Messages)
	return out
}
