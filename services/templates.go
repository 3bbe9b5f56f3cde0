package services

import (
	"fmt"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/models"
)

// Mail bodies are the storefront's Dutch templates. Values are stripped of
// angle brackets before interpolation; layout matches the confirmation mail
// customers already know.

const mailWrapper = `
<div style="font-family:Arial,sans-serif;max-width:620px;margin:0 auto;line-height:1.5;color:#111">
  <div style="padding:18px 18px;border:1px solid #e6ecf5;border-radius:14px;background:#ffffff">
    %s
    <p style="margin:14px 0 0 0;color:#444">
      Met vriendelijke groet,<br><strong>GSM Team</strong>
    </p>
  </div>
  <p style="font-size:12px;color:#6b7280;margin:10px 0 0 0;">
    Referentie: %s
  </p>
</div>`

func detailsBlock(req *models.RepairRequest) string {
	return fmt.Sprintf(`<div style="padding:12px 14px;border-radius:12px;background:#f6f8fc;border:1px solid #e6ecf5">
      <div style="margin:0 0 6px 0;"><strong>Toestel:</strong> %s</div>
      <div style="margin:0 0 6px 0;"><strong>Reparatie:</strong> %s</div>
      <div style="margin:0 0 6px 0;"><strong>Richtprijs:</strong> %s</div>
      <div style="margin:0;"><strong>Voorkeur:</strong> %s</div>
    </div>`,
		orDash(Sanitize(DeviceLabel(req))),
		orDash(Sanitize(req.Issue)),
		orDash(Sanitize(req.PriceText)),
		orDash(Sanitize(PreferredSlot(req))))
}

func greeting(name string) string {
	if name == "" {
		return "Bedankt!"
	}
	return fmt.Sprintf("Bedankt %s!", Sanitize(name))
}

// ConfirmationMail is sent right after intake.
func ConfirmationMail(req *models.RepairRequest) (subject, html string) {
	subject = "Bevestiging reparatie-aanvraag – GSM Team"
	body := fmt.Sprintf(`<h2 style="margin:0 0 10px 0;">Bevestiging reparatie-aanvraag</h2>
    <p style="margin:0 0 14px 0;color:#444">%s We hebben je aanvraag ontvangen.</p>
    %s
    <p style="margin:14px 0 0 0;color:#444">
      Dit is een richtprijs. Na controle van het toestel laten we je weten als de prijs afwijkt.
    </p>`, greeting(req.CustomerName), detailsBlock(req))
	return subject, fmt.Sprintf(mailWrapper, body, Sanitize(req.ID))
}

// ApprovalMail is sent when staff approves a request; the PDF quote rides
// along as attachment when it rendered.
func ApprovalMail(req *models.RepairRequest) (subject, html string) {
	subject = "Je reparatie-aanvraag is goedgekeurd – GSM Team"
	body := fmt.Sprintf(`<h2 style="margin:0 0 10px 0;">Aanvraag goedgekeurd</h2>
    <p style="margin:0 0 14px 0;color:#444">
      Goed nieuws%s: je reparatie-aanvraag is goedgekeurd. In de bijlage vind je de offerte.
    </p>
    %s`, namedSuffix(req.CustomerName), detailsBlock(req))
	return subject, fmt.Sprintf(mailWrapper, body, Sanitize(req.ID))
}

// RejectionMail is sent when staff rejects a request. The reason, when
// given, is included verbatim (sanitized).
func RejectionMail(req *models.RepairRequest, reason string) (subject, html string) {
	subject = "Update over je reparatie-aanvraag – GSM Team"
	reasonHTML := ""
	if reason != "" {
		reasonHTML = fmt.Sprintf(`<p style="margin:14px 0 0 0;color:#444"><strong>Reden:</strong> %s</p>`, Sanitize(reason))
	}
	body := fmt.Sprintf(`<h2 style="margin:0 0 10px 0;">Aanvraag niet goedgekeurd</h2>
    <p style="margin:0 0 14px 0;color:#444">
      Helaas%s: we kunnen deze reparatie-aanvraag niet in behandeling nemen.
    </p>
    %s%s`, namedSuffix(req.CustomerName), detailsBlock(req), reasonHTML)
	return subject, fmt.Sprintf(mailWrapper, body, Sanitize(req.ID))
}

func namedSuffix(name string) string {
	if name == "" {
		return ""
	}
	return " " + Sanitize(name)
}
