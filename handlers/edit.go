package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/models"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/services"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/store"
)

// Only these request fields are editable from the dashboard. Anything else
// in the patch, status included, is silently dropped.
var allowedPatchFields = map[string]bool{
	"price_text":     true,
	"preferred_date": true,
	"preferred_time": true,
	"notes":          true,
}

type EditHandler struct {
	requests store.RequestStore
}

func NewEditHandler(requests store.RequestStore) *EditHandler {
	return &EditHandler{requests: requests}
}

// UpdateRequest applies a whitelisted partial update to a request. Values
// are coerced to text; explicit nulls clear the column.
func (h *EditHandler) UpdateRequest(c *gin.Context) {
	var input models.UpdateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = models.UpdateRequestInput{}
	}

	id := strings.TrimSpace(input.ID)
	if id == "" || input.Patch == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id/patch"})
		return
	}

	cleanPatch := map[string]interface{}{}
	for key, value := range input.Patch {
		if !allowedPatchFields[key] {
			continue
		}
		if value == nil {
			cleanPatch[key] = nil
			continue
		}
		cleanPatch[key] = fmt.Sprintf("%v", value)
	}

	if len(cleanPatch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No allowed fields"})
		return
	}

	updated, err := h.requests.Patch(id, cleanPatch)
	if err != nil {
		log.WithError(err).WithField("id", id).Error("Update-request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.Sanitize(err.Error())})
		return
	}

	c.JSON(http.StatusOK, models.EditResponse{OK: true, Data: updated})
}
