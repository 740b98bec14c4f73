package email

// Provider sends marketplace mail. Real email delivery is out of scope for
// the platform; the app wires a mock provider by default and the SMTP
// implementation exists for deployments that want it.
type Provider interface {
	Send(email *Email) error

	// SendPasswordReset delivers a password-reset token to the user.
	SendPasswordReset(to string, token string) error

	Validate() error
}
