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

type ReviewHandler struct {
	requests store.RequestStore
	config   *config.Config
	mailer   MailerFactory
}

func NewReviewHandler(requests store.RequestStore, cfg *config.Config, mailer MailerFactory) *ReviewHandler {
	return &ReviewHandler{
		requests: requests,
		config:   cfg,
		mailer:   mailer,
	}
}

// Approve sets the request to approved and mails the customer a
// confirmation with the PDF quote attached. There is deliberately no
// check on the current status: re-invoking re-runs the update and the
// mail (the dashboard's retry path on a failed send).
func (h *ReviewHandler) Approve(c *gin.Context) {
	mailer, err := h.mailer()
	if err != nil {
		log.WithError(err).Error("Mail configuration incomplete")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Server error",
			"detail": services.Sanitize(err.Error()),
		})
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = models.ReviewInput{}
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	updated, err := h.requests.Patch(id, map[string]interface{}{"status": models.StatusApproved})
	if err != nil {
		log.WithError(err).WithField("id", id).Error("Approve update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.Sanitize(err.Error())})
		return
	}

	resp := models.ReviewResponse{OK: true, Data: updated}

	// The status change already committed; a missing address only skips
	// the notification.
	if updated.CustomerEmail == "" {
		c.JSON(http.StatusOK, resp)
		return
	}

	pdfSent := true
	renderStage := ""
	var attachments []services.Attachment
	pdfBytes, err := services.RenderQuotePDF(services.BuildQuote(updated))
	if err != nil {
		log.WithError(err).WithField("id", updated.ID).Warn("Quote PDF render failed")
		pdfSent = false
		renderStage = "render_pdf"
	} else {
		attachments = append(attachments, services.Attachment{
			Filename:    "offerte-" + updated.ID + ".pdf",
			ContentType: "application/pdf",
			Data:        pdfBytes,
		})
	}

	subject, html := services.ApprovalMail(updated)
	if err := mailer.Send(c.Request.Context(), updated.CustomerEmail, subject, html, attachments...); err != nil {
		log.WithError(err).WithField("id", updated.ID).Warn("Approval mail failed")
		notSent := false
		resp.MailResult = models.MailResult{
			PDFSent: &notSent,
			Stage:   "send_mail",
			Error:   services.Sanitize(err.Error()),
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.MailResult = models.MailResult{Sent: true, PDFSent: &pdfSent, Stage: renderStage}
	log.WithFields(log.Fields{"id": updated.ID, "pdf_sent": pdfSent}).Info("Approval mail sent")
	c.JSON(http.StatusOK, resp)
}

// Reject sets the request to rejected, stores the optional reason in the
// internal notes and mails the customer. No PDF on this path.
func (h *ReviewHandler) Reject(c *gin.Context) {
	mailer, err := h.mailer()
	if err != nil {
		log.WithError(err).Error("Mail configuration incomplete")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Server error",
			"detail": services.Sanitize(err.Error()),
		})
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = models.ReviewInput{}
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}
	reason := clean(input.Reason)

	patch := map[string]interface{}{"status": models.StatusRejected}
	if reason != "" {
		patch["notes"] = reason
	}

	updated, err := h.requests.Patch(id, patch)
	if err != nil {
		log.WithError(err).WithField("id", id).Error("Reject update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.Sanitize(err.Error())})
		return
	}

	resp := models.ReviewResponse{OK: true, Data: updated}

	if updated.CustomerEmail == "" {
		c.JSON(http.StatusOK, resp)
		return
	}

	subject, html := services.RejectionMail(updated, reason)
	if err := mailer.Send(c.Request.Context(), updated.CustomerEmail, subject, html); err != nil {
		log.WithError(err).WithField("id", updated.ID).Warn("Rejection mail failed")
		resp.MailResult = models.MailResult{Stage: "send_mail", Error: services.Sanitize(err.Error())}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.MailResult = models.MailResult{Sent: true}
	c.JSON(http.StatusOK, resp)
}
