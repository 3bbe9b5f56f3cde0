package services

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/config"
)

type MailgunMailer struct {
	mg      *mailgun.MailgunImpl
	from    string
	debugTo string
}

func NewMailgunMailer(cfg *config.Config) (*MailgunMailer, error) {
	if cfg.MailgunAPIKey == "" {
		return nil, &MissingEnvError{Name: "MAILGUN_API_KEY"}
	}
	if cfg.MailgunDomain == "" {
		return nil, &MissingEnvError{Name: "MAILGUN_DOMAIN"}
	}

	mg := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	if cfg.MailgunRegion == "eu" {
		mg.SetAPIBase(mailgun.APIBaseEU)
	}

	return &MailgunMailer{
		mg:      mg,
		from:    cfg.FromAddress(),
		debugTo: cfg.MailDebugTo,
	}, nil
}

func (m *MailgunMailer) Send(ctx context.Context, to, subject, html string, attachments ...Attachment) error {
	to, subject = resolveDelivery(m.debugTo, to, subject)

	msg := m.mg.NewMessage(m.from, subject, "", to)
	msg.SetHtml(html)
	for _, a := range attachments {
		msg.AddBufferAttachment(a.Filename, a.Data)
	}

	if _, _, err := m.mg.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}
