package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/models"
)

// QuoteLine is one labeled line on the quote document.
type QuoteLine struct {
	Label string
	Value string
}

// Quote is the line model behind the PDF. Sections render top-down in this
// order: header, customer, request, price, disclaimer, footer.
type Quote struct {
	Header     string
	Customer   []QuoteLine
	Request    []QuoteLine
	Price      []QuoteLine
	Disclaimer string
	Footer     string
}

const quoteFooter = "GSM Team · Reparaties en accessoires · info@gsmteam.nl"

// BuildQuote maps a repair request onto the quote line model. When the
// free-text price holds a parseable amount it is treated as VAT-inclusive
// and split at 21%; otherwise the raw text is shown with a disclaimer.
func BuildQuote(req *models.RepairRequest) Quote {
	q := Quote{
		Header: "Offerte reparatie",
		Customer: []QuoteLine{
			{Label: "Naam", Value: orDash(req.CustomerName)},
			{Label: "E-mail", Value: orDash(req.CustomerEmail)},
			{Label: "Telefoon", Value: orDash(req.CustomerPhone)},
		},
		Request: []QuoteLine{
			{Label: "Toestel", Value: orDash(DeviceLabel(req))},
			{Label: "Reparatie", Value: orDash(req.Issue)},
			{Label: "Referentie", Value: req.ID},
			{Label: "Voorkeur", Value: orDash(PreferredSlot(req))},
		},
		Footer: quoteFooter,
	}

	if amount, ok := ExtractAmount(req.PriceText); ok {
		breakdown := BreakdownFromInclusive(amount)
		q.Price = []QuoteLine{
			{Label: "Prijs excl. btw", Value: FormatEuro(breakdown.Excl)},
			{Label: "Btw 21%", Value: FormatEuro(breakdown.VAT)},
			{Label: "Totaal incl. btw", Value: FormatEuro(breakdown.Incl)},
		}
		q.Disclaimer = "Dit is een richtprijs. Na controle van het toestel laten we je weten als de prijs afwijkt."
	} else {
		q.Price = []QuoteLine{
			{Label: "Richtprijs", Value: orDash(req.PriceText)},
		}
		q.Disclaimer = "De exacte prijs volgt na controle van het toestel."
	}

	return q
}

// DeviceLabel joins brand, model and color into one display string.
func DeviceLabel(req *models.RepairRequest) string {
	return joinNonEmpty(req.Brand, req.Model, req.Color)
}

// PreferredSlot joins the free-text preferred date and time.
func PreferredSlot(req *models.RepairRequest) string {
	return joinNonEmpty(req.PreferredDate, req.PreferredTime)
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// RenderQuotePDF lays out the quote on a single A4 page with a manually
// tracked vertical cursor.
func RenderQuotePDF(q Quote) ([]byte, error) {
	const (
		marginLeft = 20.0
		labelWidth = 45.0
		lineStep   = 7.0
	)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Offerte GSM Team", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	y := 20.0

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(marginLeft, y, tr("GSM Team"))
	y += 9

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(marginLeft, y, tr(q.Header))
	y += 5

	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(marginLeft, y, 190, y)
	y += 10

	section := func(title string, lines []QuoteLine) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(marginLeft, y, tr(title))
		y += lineStep
		for _, line := range lines {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.Text(marginLeft, y, tr(line.Label))
			pdf.SetFont("Helvetica", "", 10)
			pdf.Text(marginLeft+labelWidth, y, tr(line.Value))
			y += lineStep
		}
		y += 4
	}

	section("Klant", q.Customer)
	section("Aanvraag", q.Request)
	section("Prijs", q.Price)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Text(marginLeft, y, tr(q.Disclaimer))

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.Text(marginLeft, 285, tr(q.Footer))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}
