package app

import (
	"wagenmarkt_backend/internal/email"
	"wagenmarkt_backend/internal/logger"
)

// MockEmailProvider logs instead of sending. Used when no SMTP host is
// configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(e *email.Email) error {
	logger.Info("[mock email]", "to", e.To, "subject", e.Subject)
	return nil
}

func (m *MockEmailProvider) SendWelcome(to, name string) error {
	logger.Info("[mock email] welcome", "to", to, "name", name)
	return nil
}
