package email

// Email is one outbound message.
type Email struct {
	To      string
	Subject string
	Body    string // HTML
}

// Provider sends transactional mail. The app swaps in a mock when no
// SMTP host is configured.
type Provider interface {
	Send(email *Email) error
	SendWelcome(to, name string) error
}
