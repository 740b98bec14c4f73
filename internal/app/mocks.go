package app

import (
	"tasmeem_backend/internal/email"
	"tasmeem_backend/internal/logger"
)

// MockEmailProvider is used in tests and local development. Reset tokens are
// logged so the flow can be exercised without a mail server.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error { return nil }

func (m *MockEmailProvider) SendPasswordReset(to string, token string) error {
	logger.Info("Mock email: password reset", "to", to, "token", token)
	return nil
}

func (m *MockEmailProvider) Validate() error { return nil }
