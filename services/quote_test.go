package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/models"
)

func quoteRequest() *models.RepairRequest {
	return &models.RepairRequest{
		ID:            "req-42",
		CustomerName:  "Jan Jansen",
		CustomerEmail: "jan@example.com",
		CustomerPhone: "0612345678",
		Brand:         "Apple",
		Model:         "iPhone 14",
		Color:         "zwart",
		Issue:         "Scherm kapot",
		PriceText:     "€ 79,95",
		PreferredDate: "2026-09-01",
		PreferredTime: "14:00",
	}
}

func TestBuildQuote(t *testing.T) {
	t.Run("splits a parseable price into the VAT breakdown", func(t *testing.T) {
		q := BuildQuote(quoteRequest())

		require.Len(t, q.Price, 3)
		assert.Equal(t, "Prijs excl. btw", q.Price[0].Label)
		assert.Equal(t, "€ 66,07", q.Price[0].Value)
		assert.Equal(t, "Btw 21%", q.Price[1].Label)
		assert.Equal(t, "€ 13,88", q.Price[1].Value)
		assert.Equal(t, "Totaal incl. btw", q.Price[2].Label)
		assert.Equal(t, "€ 79,95", q.Price[2].Value)
	})

	t.Run("falls back to the raw text when no amount parses", func(t *testing.T) {
		req := quoteRequest()
		req.PriceText = "Op aanvraag"

		q := BuildQuote(req)

		require.Len(t, q.Price, 1)
		assert.Equal(t, "Richtprijs", q.Price[0].Label)
		assert.Equal(t, "Op aanvraag", q.Price[0].Value)
		assert.Contains(t, q.Disclaimer, "exacte prijs")
	})

	t.Run("request block keeps its field order", func(t *testing.T) {
		q := BuildQuote(quoteRequest())

		labels := make([]string, len(q.Request))
		for i, line := range q.Request {
			labels[i] = line.Label
		}
		assert.Equal(t, []string{"Toestel", "Reparatie", "Referentie", "Voorkeur"}, labels)
		assert.Equal(t, "Apple iPhone 14 zwart", q.Request[0].Value)
		assert.Equal(t, "req-42", q.Request[2].Value)
		assert.Equal(t, "2026-09-01 14:00", q.Request[3].Value)
	})

	t.Run("empty fields render as a dash", func(t *testing.T) {
		req := quoteRequest()
		req.CustomerPhone = ""
		req.Issue = ""

		q := BuildQuote(req)

		assert.Equal(t, "-", q.Customer[2].Value)
		assert.Equal(t, "-", q.Request[1].Value)
	})
}

func TestRenderQuotePDF(t *testing.T) {
	pdf, err := RenderQuotePDF(BuildQuote(quoteRequest()))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output is not a PDF")
	assert.Greater(t, len(pdf), 500)
}
