package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/models"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/services"
)

func reviewRouter(h *ReviewHandler) *gin.Engine {
	router := gin.New()
	router.POST("/api/approve", h.Approve)
	router.POST("/api/reject", h.Reject)
	return router
}

func approvedRequest() *models.RepairRequest {
	return &models.RepairRequest{
		ID:            "req-9",
		CustomerName:  "Jan",
		CustomerEmail: "jan@example.com",
		Brand:         "Apple",
		Model:         "iPhone 14",
		Issue:         "Scherm kapot",
		PriceText:     "€ 79,95",
		Status:        models.StatusApproved,
	}
}

func TestApprove(t *testing.T) {
	t.Run("missing id returns 400", func(t *testing.T) {
		requests := new(MockRequestStore)
		h := NewReviewHandler(requests, testConfig(), mailerFactory(new(MockMailer)))

		w, resp := performJSON(t, reviewRouter(h), "POST", "/api/approve", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing id", resp["error"])
		requests.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything)
	})

	t.Run("approves and mails the quote", func(t *testing.T) {
		requests := new(MockRequestStore)
		mailer := new(MockMailer)
		h := NewReviewHandler(requests, testConfig(), mailerFactory(mailer))

		requests.On("Patch", "req-9", map[string]interface{}{"status": models.StatusApproved}).
			Return(approvedRequest(), nil)
		mailer.On("Send", mock.Anything, "jan@example.com", mock.Anything, mock.Anything,
			mock.MatchedBy(func(attachments []services.Attachment) bool {
				return len(attachments) == 1 &&
					attachments[0].Filename == "offerte-req-9.pdf" &&
					attachments[0].ContentType == "application/pdf" &&
					bytes.HasPrefix(attachments[0].Data, []byte("%PDF"))
			})).Return(nil)

		w, resp := performJSON(t, reviewRouter(h), "POST", "/api/approve", map[string]interface{}{"id": "req-9"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, resp["ok"])
		assert.Equal(t, true, resp["mail_sent"])
		assert.Equal(t, true, resp["pdf_sent"])
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, models.StatusApproved, data["status"])
		requests.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("missing customer email skips the mail", func(t *testing.T) {
		requests := new(MockRequestStore)
		mailer := new(MockMailer)
		h := NewReviewHandler(requests, testConfig(), mailerFactory(mailer))

		record := approvedRequest()
		record.CustomerEmail = ""
		requests.On("Patch", mock.Anything, mock.Anything).Return(record, nil)

		w, resp := performJSON(t, reviewRouter(h), "POST", "/api/approve", map[string]interface{}{"id": "req-9"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, resp["ok"])
		assert.Equal(t, false, resp["mail_sent"])
		mailer.AssertNotCalled(t, "Send")
	})

	t.Run("mail failure keeps the 200 after the status change", func(t *testing.T) {
		requests := new(MockRequestStore)
		mailer := new(MockMailer)
		h := NewReviewHandler(requests, testConfig(), mailerFactory(mailer))

		requests.On("Patch", mock.Anything, mock.Anything).Return(approvedRequest(), nil)
		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp send: connection refused"))

		w, resp := performJSON(t, reviewRouter(h), "POST", "/api/approve", map[string]interface{}{"id": "req-9"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, resp["ok"])
		assert.Equal(t, false, resp["mail_sent"])
		assert.Equal(t, false, resp["pdf_sent"])
		assert.Equal(t, "send_mail", resp["stage"])
		assert.Contains(t, resp["mail_error"], "connection refused")
	})

	t.Run("store error returns 500 and no mail", func(t *testing.T) {
		requests := new(MockRequestStore)
		mailer := new(MockMailer)
		h := NewReviewHandler(requests, testConfig(), mailerFactory(mailer))

		requests.On("Patch", mock.Anything, mock.Anything).Return(nil, errors.New("network failure"))

		w, resp := performJSON(t, reviewRouter(h), "POST", "/api/approve", map[string]interface{}{"id": "req-9"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, resp["error"], "network failure")
		mailer.AssertNotCalled(t, "Send")
	})

	t.Run("approving twice re-runs the update and the mail", func(t *testing.T) {
		// No status precondition: a second approve is a full re-run, not a
		// guarded no-op.
		requests := new(MockRequestStore)
		mailer := new(MockMailer)
		h := NewReviewHandler(requests, testConfig(), mailerFactory(mailer))

		requests.On("Patch", "req-9", map[string]interface{}{"status": models.StatusApproved}).
			Return(approvedRequest(), nil).Twice()
		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Twice()

		router := reviewRouter(h)
		w1, _ := performJSON(t, router, "POST", "/api/approve", map[string]interface{}{"id": "req-9"})
		w2, _ := performJSON(t, router, "POST", "/api/approve", map[string]interface{}{"id": "req-9"})

		assert.Equal(t, http.StatusOK, w1.Code)
		assert.Equal(t, http.StatusOK, w2.Code)
		requests.AssertNumberOfCalls(t, "Patch", 2)
		mailer.AssertNumberOfCalls(t, "Send", 2)
	})
}

func TestReject(t *testing.T) {
	t.Run("missing id returns 400", func(t *testing.T) {
		h := NewReviewHandler(new(MockRequestStore), testConfig(), mailerFactory(new(MockMailer)))

		w, resp := performJSON(t, reviewRouter(h), "POST", "/api/reject", map[string]interface{}{"reason": "geen onderdelen"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing id", resp["error"])
	})

	t.Run("stores the reason in notes and mails without attachment", func(t *testing.T) {
		requests := new(MockRequestStore)
		mailer := new(MockMailer)
		h := NewReviewHandler(requests, testConfig(), mailerFactory(mailer))

		rejected := approvedRequest()
		rejected.Status = models.StatusRejected
		requests.On("Patch", "req-9", map[string]interface{}{
			"status": models.StatusRejected,
			"notes":  "geen onderdelen leverbaar",
		}).Return(rejected, nil)
		mailer.On("Send", mock.Anything, "jan@example.com", mock.Anything, mock.Anything,
			mock.MatchedBy(func(attachments []services.Attachment) bool {
				return len(attachments) == 0
			})).Return(nil)

		w, resp := performJSON(t, reviewRouter(h), "POST", "/api/reject", map[string]interface{}{
			"id":     "req-9",
			"reason": "geen onderdelen leverbaar",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, resp["ok"])
		assert.Equal(t, true, resp["mail_sent"])
		assert.Nil(t, resp["pdf_sent"])
		requests.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("reject without reason only patches the status", func(t *testing.T) {
		requests := new(MockRequestStore)
		mailer := new(MockMailer)
		h := NewReviewHandler(requests, testConfig(), mailerFactory(mailer))

		rejected := approvedRequest()
		rejected.Status = models.StatusRejected
		requests.On("Patch", "req-9", map[string]interface{}{"status": models.StatusRejected}).
			Return(rejected, nil)
		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		w, _ := performJSON(t, reviewRouter(h), "POST", "/api/reject", map[string]interface{}{"id": "req-9"})

		assert.Equal(t, http.StatusOK, w.Code)
		requests.AssertExpectations(t)
	})
}
