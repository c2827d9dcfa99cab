// Package email dispatches contact form messages over SMTP. Bodies are HTML
// rendered with html/template so user-supplied values are escaped and cannot
// inject markup.
package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"

	"github.com/jordan-wright/email"

	"viang-solution-backend/config"
	"viang-solution-backend/internal/domain"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	ssl       bool
	fromEmail string
	toEmail   string
	ccEmail   string
}

// NewEmailService creates a new email service from the SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		ssl:       cfg.SMTPSSL,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
		ccEmail:   cfg.ContactEmailCC,
	}
}

// notificationTemplate is the HTML body mailed to the business recipient.
const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0a3d62; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0a3d62; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div>{{.Name}} ({{.Email}})</div>
            </div>
            {{if .Phone}}<div class="field">
                <div class="label">Phone:</div>
                <div>{{.Phone}}</div>
            </div>{{end}}
            <div class="field">
                <div class="label">Service:</div>
                <div>{{.Service}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Sent from the Viang Solution website contact form.</p>
            <p>Reply to this email to answer the customer directly.</p>
        </div>
    </div>
</body>
</html>`

// confirmationTemplate is the acknowledgement mailed to the submitter.
const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank you for contacting Viang Solution</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h3>Thank you for contacting us!</h3>
    <p>Dear {{.Name}},</p>
    <p>We have received your message about <strong>{{.Service}}</strong> and will get back to you shortly.</p>
    <p>Best regards,</p>
    <p>The Viang Solution Team</p>
</body>
</html>`

var (
	notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationTemplate))
)

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// SendNotification mails the submission to the business recipient with
// Reply-To set to the submitter, and an optional CC to the sending account.
func (s *EmailService) SendNotification(req *domain.ContactRequest) error {
	msg, err := s.buildNotification(req)
	if err != nil {
		return err
	}
	if err := s.send(msg); err != nil {
		return fmt.Errorf("sending notification email: %w", err)
	}
	return nil
}

// SendConfirmation mails an acknowledgement to the submitter.
func (s *EmailService) SendConfirmation(req *domain.ContactRequest) error {
	msg, err := s.buildConfirmation(req)
	if err != nil {
		return err
	}
	if err := s.send(msg); err != nil {
		return fmt.Errorf("sending confirmation email: %w", err)
	}
	return nil
}

func (s *EmailService) buildNotification(req *domain.ContactRequest) (*email.Email, error) {
	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, req); err != nil {
		return nil, fmt.Errorf("rendering notification body: %w", err)
	}

	e := email.NewEmail()
	e.From = s.fromEmail
	e.To = []string{s.toEmail}
	if s.ccEmail != "" {
		e.Cc = []string{s.ccEmail}
	}
	// Replies go to the customer, not the relay account.
	e.ReplyTo = []string{req.Email}
	e.Subject = fmt.Sprintf("New website contact: %s", req.Service)
	e.HTML = body.Bytes()
	return e, nil
}

func (s *EmailService) buildConfirmation(req *domain.ContactRequest) (*email.Email, error) {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, req); err != nil {
		return nil, fmt.Errorf("rendering confirmation body: %w", err)
	}

	e := email.NewEmail()
	e.From = s.fromEmail
	e.To = []string{req.Email}
	e.Subject = "Thank you for contacting Viang Solution"
	e.HTML = body.Bytes()
	return e, nil
}

func (s *EmailService) send(e *email.Email) error {
	addr := net.JoinHostPort(s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if s.ssl {
		return e.SendWithTLS(addr, auth, &tls.Config{ServerName: s.host})
	}
	return e.Send(addr, auth)
}
