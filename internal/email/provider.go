package email

// Message is one outgoing mail.
type Message struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// Provider sends mail. Implementations must be safe for concurrent use.
type Provider interface {
	Send(msg *Message) error
}

// NoopProvider discards mail; used when SMTP is not configured and in tests.
type NoopProvider struct{}

func (NoopProvider) Send(*Message) error { return nil }
