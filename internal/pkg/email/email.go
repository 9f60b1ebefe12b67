package email

import (
	"crypto/tls"
	"fmt"
	"html"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// LeaveDecision is the content of a leave decision notification
type LeaveDecision struct {
	RequestID       int64
	StartDate       string
	EndDate         string
	Reason          string
	Status          string
	DecidedBy       string
	RejectionReason string
}

// EmailService defines the interface for email operations
type EmailService interface {
	// SendLeaveDecision notifies a faculty member of an approval or rejection.
	// It reports whether a message was actually handed to the SMTP server.
	SendLeaveDecision(toEmail, toName string, decision LeaveDecision) (bool, error)
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendLeaveDecision sends the decision email, or only logs it when SMTP
// credentials are not configured
func (s *EmailServiceImpl) SendLeaveDecision(toEmail, toName string, d LeaveDecision) (bool, error) {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Int64("leaveRequestId", d.RequestID).
			Str("status", d.Status).
			Msg("SMTP credentials not configured - leave decision email not sent.")
		return false, nil
	}

	subject := fmt.Sprintf("Leave request %s - Schedulocity", d.Status)

	reasonLine := ""
	if d.RejectionReason != "" {
		reasonLine = fmt.Sprintf("<p>Reason given: <strong>%s</strong></p>", html.EscapeString(d.RejectionReason))
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Leave request %s</h2>
				<p>Hello %s,</p>
				<p>Your %s leave from <strong>%s</strong> to <strong>%s</strong> was %s by %s.</p>
				%s
				<p>Best regards,<br>Schedulocity</p>
			</div>
		</body>
		</html>
	`,
		html.EscapeString(d.Status),
		html.EscapeString(toName),
		html.EscapeString(d.Reason),
		html.EscapeString(d.StartDate),
		html.EscapeString(d.EndDate),
		html.EscapeString(d.Status),
		html.EscapeString(d.DecidedBy),
		reasonLine,
	)

	if err := s.sendHTMLEmail(toEmail, subject, body); err != nil {
		return false, err
	}
	return true, nil
}

// sendHTMLEmail sends an HTML email
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := [][2]string{
		{"From", fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)},
		{"To", toEmail},
		{"Subject", subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
	}

	message := ""
	for _, h := range headers {
		message += fmt.Sprintf("%s: %s\r\n", h[0], h[1])
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if !s.config.UseTLS {
		if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	conn, err := tls.Dial("tcp", serverAddress, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create SMTP client")
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return nil
}
