package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"wordnest/internal/shared/config"
	"wordnest/internal/shared/logger"
)

// Service sends transactional mail. The noop variant backs local
// development where no SMTP server runs.
type Service interface {
	SendVerificationEmail(to, token string) error
	SendPasswordChangedEmail(to string) error
}

type SMTPEmailService struct {
	cfg     config.EmailConfig
	baseURL string
	dialer  *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig, baseURL string) *SMTPEmailService {
	return &SMTPEmailService{
		cfg:     cfg,
		baseURL: baseURL,
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *SMTPEmailService) SendVerificationEmail(to, token string) error {
	verificationURL := fmt.Sprintf("%s/auth/verify-email?token=%s", s.baseURL, token)

	subject := "Verify Your Email Address"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to Wordnest!</h2>
			<p>Please verify your email address by clicking the link below:</p>
			<p><a href="%s">Verify Email Address</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't create an account, please ignore this email.</p>
		</body>
		</html>
	`, verificationURL, verificationURL)

	plainBody := fmt.Sprintf(`
Welcome to Wordnest!

Please verify your email address by visiting:
%s

This link will expire in 24 hours.

If you didn't create an account, please ignore this email.
	`, verificationURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordChangedEmail(to string) error {
	subject := "Password Changed Successfully"
	htmlBody := `
		<html>
		<body>
			<h2>Password Changed</h2>
			<p>Your password has been successfully changed.</p>
			<p>If you didn't make this change, please contact support immediately.</p>
		</body>
		</html>
	`

	plainBody := `
Password Changed

Your password has been successfully changed.

If you didn't make this change, please contact support immediately.
	`

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// NoopEmailService logs instead of sending. Used when email is disabled.
type NoopEmailService struct {
	logger logger.Interface
}

func NewNoopEmailService(logger logger.Interface) *NoopEmailService {
	return &NoopEmailService{logger: logger}
}

func (s *NoopEmailService) SendVerificationEmail(to, token string) error {
	s.logger.Infow("email disabled, skipping verification email", "to", to)
	return nil
}

func (s *NoopEmailService) SendPasswordChangedEmail(to string) error {
	s.logger.Infow("email disabled, skipping password changed email", "to", to)
	return nil
}
