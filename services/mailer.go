package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/config"
)

// Attachment is a binary mail attachment. Data is passed to the transport
// byte-for-byte; ContentType must match the payload.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Mailer sends one transactional HTML mail per call. No retries, no queue:
// a failed send surfaces as an error and the caller decides what to report.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string, attachments ...Attachment) error
}

// MissingEnvError marks a send that cannot happen because the transport
// configuration is incomplete.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return "Missing env: " + e.Name
}

// NewMailer picks the transport from MAIL_TRANSPORT.
func NewMailer(cfg *config.Config) (Mailer, error) {
	switch cfg.MailTransport {
	case "smtp":
		return NewSMTPMailer(cfg)
	case "mailgun", "":
		return NewMailgunMailer(cfg)
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.MailTransport)
	}
}

// resolveDelivery applies the debug recipient override: when set, every mail
// goes to the override address with a [DEBUG] subject prefix. The persisted
// request data is untouched, only the delivery target changes.
func resolveDelivery(debugTo, to, subject string) (string, string) {
	if debugTo == "" {
		return to, subject
	}
	return debugTo, "[DEBUG] " + subject
}

// Sanitize strips angle brackets from text that ends up in mail bodies or
// client-facing error messages.
func Sanitize(v string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(v)
}
