package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"channel-scout/internal/models"
	"channel-scout/shared/config"
)

type Sender struct {
	config *config.EmailConfig
}

func NewSender(cfg *config.EmailConfig) *Sender {
	return &Sender{
		config: cfg,
	}
}

// SendReport emails a digest of one scan. Reports with no channels are
// silently skipped.
func (s *Sender) SendReport(report *models.ScanReport) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}

	if len(report.Channels) == 0 {
		return nil // Nothing to report
	}

	subject := fmt.Sprintf("Channel Scout - %d Channels Found in %s (%s)",
		len(report.Channels), report.Region, report.Date.Format("Jan 2, 2006"))

	body, err := s.generateEmailBody(report)
	if err != nil {
		return fmt.Errorf("failed to generate email body: %w", err)
	}

	return s.sendViaSMTP(subject, body)
}

func (s *Sender) sendViaSMTP(subject, body string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.SMTPServer)

	to := []string{s.config.ToEmail}
	msg := []byte(fmt.Sprintf(`To: %s
From: %s
Subject: %s
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

%s`, s.config.ToEmail, s.config.FromEmail, subject, body))

	addr := fmt.Sprintf("%s:%d", s.config.SMTPServer, s.config.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.FromEmail, to, msg)
}

const reportTemplate = `<html>
<body style="font-family: sans-serif;">
<h2>Channel Scout Report - {{.Region}}</h2>
<p>{{len .Channels}} channels discovered on {{.Date.Format "Jan 2, 2006"}}.</p>
<table border="1" cellpadding="6" cellspacing="0">
<tr><th>Channel</th><th>Country</th><th>Subscribers</th><th>Email</th><th>Website</th></tr>
{{range .Channels}}
<tr>
<td><a href="{{.URL}}">{{.Name}}</a></td>
<td>{{.Country}}</td>
<td>{{.Subscribers}}</td>
<td>{{.Email}}</td>
<td>{{.Website}}</td>
</tr>
{{end}}
</table>
</body>
</html>`

func (s *Sender) generateEmailBody(report *models.ScanReport) (string, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.String(), nil
}
