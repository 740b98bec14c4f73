package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}

// SMTPProvider delivers mail over plain SMTP.
type SMTPProvider struct {
	config *SMTPConfig
	auth   smtp.Auth
}

func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &SMTPProvider{
		config: config,
		auth:   auth,
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if email.From == "" {
		email.From = fmt.Sprintf("%s <%s>", p.config.FromName, p.config.FromEmail)
	}

	message := p.buildMessage(email)
	addr := fmt.Sprintf("%s:%d", p.config.Host, p.config.Port)

	if p.config.UseTLS {
		return p.sendTLS(addr, email, message)
	}
	return smtp.SendMail(addr, p.auth, p.config.FromEmail, email.To, message)
}

func (p *SMTPProvider) SendPasswordReset(to string, token string) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Reset your password",
		Body:    passwordResetBody(token),
	})
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("smtp from address is not configured")
	}
	return nil
}

func (p *SMTPProvider) buildMessage(email *Email) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", email.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(email.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(email.Body)
	return []byte(b.String())
}

func (p *SMTPProvider) sendTLS(addr string, email *Email, message []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: p.config.Host})
	if err != nil {
		return fmt.Errorf("failed to dial smtp over tls: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, p.config.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if p.auth != nil {
		if err := client.Auth(p.auth); err != nil {
			return err
		}
	}
	if err := client.Mail(p.config.FromEmail); err != nil {
		return err
	}
	for _, to := range email.To {
		if err := client.Rcpt(to); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func passwordResetBody(token string) string {
	return fmt.Sprintf(
		"We received a request to reset your password.\r\n\r\n"+
			"Your reset token: %s\r\n\r\n"+
			"The token expires in one hour. If you did not request a reset, ignore this message.\r\n",
		token,
	)
}
