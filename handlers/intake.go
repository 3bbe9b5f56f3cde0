package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/config"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/models"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/services"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/store"
)

// MailerFactory builds the mailer per request so missing mail configuration
// surfaces as a handled error instead of a startup crash, and tests can
// inject a double.
type MailerFactory func() (services.Mailer, error)

type IntakeHandler struct {
	requests store.RequestStore
	config   *config.Config
	mailer   MailerFactory
}

func NewIntakeHandler(requests store.RequestStore, cfg *config.Config, mailer MailerFactory) *IntakeHandler {
	return &IntakeHandler{
		requests: requests,
		config:   cfg,
		mailer:   mailer,
	}
}

// clean strips angle brackets and surrounding whitespace from form input.
func clean(v string) string {
	return strings.TrimSpace(services.Sanitize(v))
}

// CreateRequest takes a storefront submission, stores it as a pending
// repair request and sends a best-effort confirmation mail. The mail
// outcome never changes the HTTP status once the insert committed.
func (h *IntakeHandler) CreateRequest(c *gin.Context) {
	mailer, err := h.mailer()
	if err != nil {
		log.WithError(err).Error("Mail configuration incomplete")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Server error",
			"detail": services.Sanitize(err.Error()),
		})
		return
	}

	// Malformed or empty bodies are treated as an empty submission so the
	// missing-email check produces the 400, not the JSON decoder.
	var input models.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = models.CreateRequestInput{}
	}

	email := clean(input.CustomerEmail)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing customer_email"})
		return
	}

	row := map[string]interface{}{
		"customer_name":  clean(input.CustomerName),
		"customer_email": email,
		"customer_phone": clean(input.CustomerPhone),
		"brand":          clean(input.Brand),
		"model":          clean(input.Model),
		"color":          clean(input.Color),
		"issue":          clean(input.Issue),
		"price_text":     clean(input.PriceText),
		"preferred_date": clean(input.PreferredDate),
		"preferred_time": clean(input.PreferredTime),
		"status":         models.StatusPending,
	}

	created, err := h.requests.Create(row)
	if err != nil {
		log.WithError(err).Error("Supabase insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Database error",
			"detail": services.Sanitize(err.Error()),
		})
		return
	}

	resp := models.IntakeResponse{OK: true, ID: created.ID}
	subject, html := services.ConfirmationMail(created)
	if err := mailer.Send(c.Request.Context(), created.CustomerEmail, subject, html); err != nil {
		log.WithError(err).WithField("id", created.ID).Warn("Confirmation mail failed")
		resp.MailResult = models.MailResult{Stage: "send_mail", Error: services.Sanitize(err.Error())}
		c.JSON(http.StatusOK, resp)
		return
	}

	log.WithFields(log.Fields{"id": created.ID, "to": created.CustomerEmail}).Info("Confirmation mail sent")
	resp.MailResult = models.MailResult{Sent: true}
	c.JSON(http.StatusOK, resp)
}
