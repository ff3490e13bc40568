package notification

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"text/template"

	"photostudio/models"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends a plain-text e-mail.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	dialer := gomail.NewDialer(host, port, username, password)
	dialer.TLSConfig = &tls.Config{ServerName: host}
	return &SMTPMailer{dialer: dialer, from: from}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

var emailTemplate = template.Must(template.New("studio").Parse(
	`New {{.Kind}} submission ({{.RecordID}})

Name:  {{.Name}}
Email: {{.Email}}
{{- if .Phone}}
Phone: {{.Phone}}{{end}}
{{- if .Service}}
Service: {{.Service}}{{end}}
{{- if .Date}}
Date: {{.Date}}{{if .Time}} at {{.Time}}{{end}}{{end}}
{{- if .Message}}

{{.Message}}{{end}}

Submitted {{.SubmittedAt.Format "02 Jan 2006 15:04 MST"}}
`))

// RenderEmail produces the subject and body of the studio e-mail for n.
func RenderEmail(n models.StudioNotification) (string, string, error) {
	var subject string
	switch n.Kind {
	case "booking":
		subject = fmt.Sprintf("New booking: %s on %s", n.Service, n.Date)
	case models.ContactKindFeedback:
		subject = "New feedback from " + n.Name
	default:
		subject = "New contact message from " + n.Name
	}

	var body bytes.Buffer
	if err := emailTemplate.Execute(&body, n); err != nil {
		return "", "", fmt.Errorf("failed to render notification: %w", err)
	}
	return subject, body.String(), nil
}
