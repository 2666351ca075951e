package services

import (
	"bytes"
	"fmt"
	"html"
	htmltemplate "html/template"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"zerotosite/config"
	"zerotosite/models"

	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// emailTemplateDir is where on-disk email templates override the built-in ones
var emailTemplateDir = "templates/emails"

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

const leadHTMLTemplate = `<html><body>
<h2>New website request from {{.BusinessName}}</h2>
<p><strong>Name:</strong> {{.Name}}<br>
<strong>Email:</strong> {{.Email}}<br>
<strong>Business:</strong> {{.BusinessName}}<br>
<strong>Website:</strong> {{.Website}}<br>
<strong>Received:</strong> {{.Timestamp}}</p>
<p>{{.Message}}</p>
</body></html>`

const leadTextTemplate = `New website request from {{.BusinessName}}

Name: {{.Name}}
Email: {{.Email}}
Business: {{.BusinessName}}
Website: {{.Website}}
Received: {{.Timestamp}}

{{.Message}}
`

var builtinTemplates = map[string]string{
	"new_lead.html": leadHTMLTemplate,
	"new_lead.txt":  leadTextTemplate,
}

// loadTemplate renders templateName.html and templateName.txt. Files in
// emailTemplateDir win over the built-in copies.
func loadTemplate(templateName string, data interface{}) (htmlBody string, textBody string, err error) {
	source := func(file string) (string, error) {
		content, err := os.ReadFile(filepath.Join(emailTemplateDir, file))
		if err == nil {
			return string(content), nil
		}
		if builtin, ok := builtinTemplates[file]; ok {
			return builtin, nil
		}
		return "", fmt.Errorf("failed to read template %s: %w", file, err)
	}

	htmlSrc, err := source(templateName + ".html")
	if err != nil {
		return "", "", err
	}
	htmlTmpl, err := htmltemplate.New(templateName + ".html").Parse(htmlSrc)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s.html: %w", templateName, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s.html: %w", templateName, err)
	}

	textSrc, err := source(templateName + ".txt")
	if err != nil {
		return "", "", err
	}
	textTmpl, err := texttemplate.New(templateName + ".txt").Parse(textSrc)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s.txt: %w", templateName, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s.txt: %w", templateName, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

var plainTextPolicy = bluemonday.StrictPolicy()

// plainText strips any markup a visitor typed into a form field
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainTextPolicy.Sanitize(s)))
}

// BuildLeadEmail creates the notification sent to the site owner for a new contact request
func BuildLeadEmail(to string, payload models.WebhookPayload) (*Email, error) {
	data := models.WebhookPayload{
		Name:         plainText(payload.Name),
		Email:        plainText(payload.Email),
		BusinessName: plainText(payload.BusinessName),
		Website:      plainText(payload.Website),
		Message:      plainText(payload.Message),
		Timestamp:    payload.Timestamp,
	}

	htmlBody, textBody, err := loadTemplate("new_lead", data)
	if err != nil {
		return nil, err
	}

	subject := "New website request"
	if data.BusinessName != "" {
		subject = fmt.Sprintf("New website request: %s", data.BusinessName)
	}

	return &Email{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, logger *zap.Logger, email *Email) error {
	// In test mode, log the email instead of sending
	if cfg.EmailTestMode {
		logger.Info("email logged (test mode - not sent)",
			zap.Strings("to", email.To),
			zap.String("subject", email.Subject),
			zap.String("text", email.TextBody),
		)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	logger.Info("email sent via Resend", zap.String("id", sent.Id), zap.Strings("to", email.To))
	return nil
}

// LeadNotifier e-mails the site owner about every delivered contact request
type LeadNotifier struct {
	cfg    *config.Config
	logger *zap.Logger
	send   func(cfg *config.Config, logger *zap.Logger, email *Email) error
}

// NewLeadNotifier returns nil when no LEAD_NOTIFY_EMAIL is configured
func NewLeadNotifier(cfg *config.Config, logger *zap.Logger) *LeadNotifier {
	if cfg.LeadNotifyEmail == "" {
		return nil
	}
	return &LeadNotifier{cfg: cfg, logger: logger, send: SendEmail}
}

// NotifyLead sends the notification in the background so the visitor never waits on it
func (n *LeadNotifier) NotifyLead(payload models.WebhookPayload) {
	email, err := BuildLeadEmail(n.cfg.LeadNotifyEmail, payload)
	if err != nil {
		n.logger.Error("failed to build lead email", zap.Error(err))
		return
	}

	go func() {
		if err := n.send(n.cfg, n.logger, email); err != nil {
			n.logger.Error("failed to send lead email", zap.Error(err))
		}
	}()
}
