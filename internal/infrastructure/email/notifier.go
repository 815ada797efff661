/*
Package email mirrors chat notifications to a mailbox over SMTP.
*/
package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	gomail "gopkg.in/mail.v2"

	"NewswireNotifier/internal/domain"
	"NewswireNotifier/internal/ports"
)

type Config struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
}

// Enabled reports whether every setting needed to send mail is present.
func (c Config) Enabled() bool {
	return c.SMTPServer != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.FromEmail != "" && c.ToEmail != ""
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Notifier struct {
	cfg    Config
	sender sender
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(cfg Config) *Notifier {
	dialer := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	dialer.Timeout = 10 * time.Second
	return &Notifier{cfg: cfg, sender: dialer}
}

// Notify sends one plain-text mail per payload.
func (n *Notifier) Notify(ctx context.Context, payload domain.NotificationPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", n.cfg.FromEmail)
	message.SetHeader("To", n.cfg.ToEmail)
	message.SetHeader("Subject", subject(payload))
	message.SetBody("text/plain", renderBody(payload))

	if err := n.sender.DialAndSend(message); err != nil {
		return fmt.Errorf("send email to %s: %w", n.cfg.ToEmail, err)
	}
	return nil
}

func subject(payload domain.NotificationPayload) string {
	if len(payload.Attachments) == 0 {
		return "Newswire alert"
	}
	first := payload.Attachments[0]
	if len(payload.Attachments) == 1 {
		return fmt.Sprintf("Newswire alert: %s", first.Title)
	}
	return fmt.Sprintf("Newswire alert: %s (+%d more)", first.Title, len(payload.Attachments)-1)
}

func renderBody(payload domain.NotificationPayload) string {
	var sb strings.Builder
	for i, att := range payload.Attachments {
		if i > 0 {
			sb.WriteString("\n-------------------------------------------\n\n")
		}
		sb.WriteString(fmt.Sprintf("%s\n", att.Title))
		if att.AuthorName != "" {
			sb.WriteString(fmt.Sprintf("By: %s (%s)\n", att.AuthorName, att.AuthorLink))
		}
		for _, field := range att.Fields {
			sb.WriteString(fmt.Sprintf("\t- %s: %s\n", field.Title, field.Value))
		}
		sb.WriteString(fmt.Sprintf("\n%s\n", att.Text))
	}
	return sb.String()
}
