package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v2"

	"go-contact-relay/config"
	"go-contact-relay/internal/domain"
)

// subjectPrefix is prepended to the user-supplied subject line.
const subjectPrefix = "Contact Form: "

// EmailService sends contact form emails through the Resend API
type EmailService struct {
	client    *resend.Client
	apiKey    string
	fromEmail string
	toEmail   string
}

// NewEmailService creates a new email service backed by Resend
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		client:    resend.NewClient(cfg.ResendAPIKey),
		apiKey:    cfg.ResendAPIKey,
		fromEmail: cfg.ContactEmailFrom,
		toEmail:   cfg.ContactEmailTo,
	}
}

// contactEmailTemplate is the HTML template for contact form emails
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
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
                <div class="label">From:</div>
                <div class="value">{{.SenderName}} ({{.SenderEmail}})</div>
            </div>
            <div class="field">
                <div class="label">Subject:</div>
                <div class="value">{{.Subject}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.MessageHTML}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the website contact form.</p>
            <p>To reply, send an email to: {{.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`

type templateData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	MessageHTML template.HTML
}

// messageHTML escapes the message body and converts its line breaks to <br>
// so multi-line messages survive the HTML email rendering.
func messageHTML(message string) template.HTML {
	escaped := template.HTMLEscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// buildSendRequest renders the template and assembles the Resend payload.
func (s *EmailService) buildSendRequest(data domain.ContactEmailData) (*resend.SendEmailRequest, error) {
	tmpl, err := template.New("contact").Parse(contactEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, templateData{
		SenderName:  data.SenderName,
		SenderEmail: data.SenderEmail,
		Subject:     data.Subject,
		MessageHTML: messageHTML(data.Message),
	}); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	return &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.toEmail},
		ReplyTo: data.SenderEmail,
		Subject: subjectPrefix + data.Subject,
		Html:    body.String(),
	}, nil
}

// SendContactEmail sends a contact form email to the configured recipient
// and returns the Resend message id.
func (s *EmailService) SendContactEmail(ctx context.Context, data domain.ContactEmailData) (string, error) {
	params, err := s.buildSendRequest(data)
	if err != nil {
		return "", err
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return sent.Id, nil
}

// IsConfigured checks if the email service has a delivery credential
func (s *EmailService) IsConfigured() bool {
	return s.apiKey != "" && s.fromEmail != "" && s.toEmail != ""
}
