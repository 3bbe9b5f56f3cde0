package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	mail "github.com/wneessen/go-mail"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/config"
)

const smtpTimeout = 15 * time.Second

// SMTPMailer submits directly over SMTP. Functionally interchangeable with
// the Mailgun transport from the caller's perspective.
type SMTPMailer struct {
	client  *mail.Client
	from    string
	debugTo string
}

func NewSMTPMailer(cfg *config.Config) (*SMTPMailer, error) {
	if cfg.SMTPHost == "" {
		return nil, &MissingEnvError{Name: "SMTP_HOST"}
	}
	if cfg.SMTPUser == "" {
		return nil, &MissingEnvError{Name: "SMTP_USER"}
	}
	if cfg.SMTPPassword == "" {
		return nil, &MissingEnvError{Name: "SMTP_PASSWORD"}
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", cfg.SMTPPort, err)
	}

	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTimeout(smtpTimeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPMailer{
		client:  client,
		from:    cfg.FromAddress(),
		debugTo: cfg.MailDebugTo,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, html string, attachments ...Attachment) error {
	to, subject = resolveDelivery(m.debugTo, to, subject)

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("smtp from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("smtp to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)
	for _, a := range attachments {
		if err := msg.AttachReader(a.Filename, bytes.NewReader(a.Data),
			mail.WithFileContentType(mail.ContentType(a.ContentType))); err != nil {
			return fmt.Errorf("smtp attachment %s: %w", a.Filename, err)
		}
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
