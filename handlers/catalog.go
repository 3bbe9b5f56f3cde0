package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/models"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/services"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/store"
)

const defaultQuality = "Standaard"

type CatalogHandler struct {
	catalog store.CatalogStore
}

func NewCatalogHandler(catalog store.CatalogStore) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// capitalize upper-cases the first rune and leaves the rest as-is, so
// "apple" becomes "Apple" and "iPhone" stays "iPhone".
func capitalize(v string) string {
	v = clean(v)
	if v == "" {
		return v
	}
	r, size := utf8.DecodeRuneInString(v)
	return string(unicode.ToUpper(r)) + v[size:]
}

// parsePrice coerces price input to a nullable number: decimal commas are
// normalized and anything unparseable becomes null ("op aanvraag") rather
// than rejecting the write.
func parsePrice(v interface{}) *float64 {
	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		return &value
	case string:
		s := strings.Replace(strings.TrimSpace(value), ",", ".", 1)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

// List returns catalog rows, or the distinct brand list when brands=1.
func (h *CatalogHandler) List(c *gin.Context) {
	if c.Query("brands") == "1" {
		brands, err := h.catalog.Brands()
		if err != nil {
			log.WithError(err).Error("Brand listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": services.Sanitize(err.Error())})
			return
		}
		c.JSON(http.StatusOK, brands)
		return
	}

	filter := models.CatalogFilter{
		Brand:  c.Query("brand"),
		Model:  c.Query("model"),
		Search: c.Query("q"),
	}

	entries, err := h.catalog.List(filter)
	if err != nil {
		log.WithError(err).Error("Catalog listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.Sanitize(err.Error())})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var input models.CreateCatalogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		input = models.CreateCatalogInput{}
	}

	row := map[string]interface{}{
		"brand":       capitalize(input.Brand),
		"model":       capitalize(input.Model),
		"color":       capitalize(input.Color),
		"repair_type": capitalize(input.RepairType),
		"quality":     clean(input.Quality),
		"price":       parsePrice(input.Price),
	}
	if row["quality"] == "" {
		row["quality"] = defaultQuality
	}

	if row["brand"] == "" || row["model"] == "" || row["color"] == "" || row["repair_type"] == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Merk, model, kleur en reparatietype zijn verplicht"})
		return
	}

	id, err := h.catalog.Create(row)
	if err != nil {
		log.WithError(err).Error("Catalog insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.Sanitize(err.Error())})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// Update patches the provided fields only, with the same per-field
// normalization as Create.
func (h *CatalogHandler) Update(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		body = map[string]interface{}{}
	}

	id, _ := body["id"].(string)
	id = clean(id)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	patch := map[string]interface{}{}
	if price, ok := body["price"]; ok {
		patch["price"] = parsePrice(price)
	}
	if quality, ok := body["quality"]; ok {
		q := clean(asString(quality))
		if q == "" {
			q = defaultQuality
		}
		patch["quality"] = q
	}
	for _, field := range []string{"brand", "model", "color", "repair_type"} {
		if value, ok := body[field]; ok {
			patch[field] = capitalize(asString(value))
		}
	}

	if err := h.catalog.Update(id, patch); err != nil {
		log.WithError(err).WithField("id", id).Error("Catalog update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.Sanitize(err.Error())})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		body = map[string]interface{}{}
	}

	id, _ := body["id"].(string)
	id = clean(id)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	if err := h.catalog.Delete(id); err != nil {
		log.WithError(err).WithField("id", id).Error("Catalog delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.Sanitize(err.Error())})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
