package store

import (
	"encoding/json"
	"fmt"

	supa "github.com/supabase-community/supabase-go"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/models"
)

const (
	requestsTable = "repair_requests"
	catalogTable  = "repair_catalog"

	catalogListLimit = 500
)

type SupabaseRequests struct {
	client *supa.Client
}

func NewRequestStore(client *supa.Client) *SupabaseRequests {
	return &SupabaseRequests{client: client}
}

func (s *SupabaseRequests) Create(row map[string]interface{}) (*models.RepairRequest, error) {
	data, _, err := s.client.From(requestsTable).
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("insert repair request: %w", err)
	}

	var created []models.RepairRequest
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("parse insert response: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("insert repair request: no row returned")
	}
	return &created[0], nil
}

func (s *SupabaseRequests) Patch(id string, patch map[string]interface{}) (*models.RepairRequest, error) {
	data, _, err := s.client.From(requestsTable).
		Update(patch, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("update repair request %s: %w", id, err)
	}

	var updated []models.RepairRequest
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("parse update response: %w", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("update repair request %s: no matching row", id)
	}
	return &updated[0], nil
}

func (s *SupabaseRequests) GetByID(id string) (*models.RepairRequest, error) {
	data, _, err := s.client.From(requestsTable).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch repair request %s: %w", id, err)
	}

	var rows []models.RepairRequest
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse repair request: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("repair request %s: not found", id)
	}
	return &rows[0], nil
}

type SupabaseCatalog struct {
	client *supa.Client
}

func NewCatalogStore(client *supa.Client) *SupabaseCatalog {
	return &SupabaseCatalog{client: client}
}

func (s *SupabaseCatalog) List(filter models.CatalogFilter) ([]models.CatalogEntry, error) {
	query := s.client.From(catalogTable).
		Select("id, brand, model, color, repair_type, quality, price", "", false).
		Order("brand", nil).
		Order("model", nil).
		Order("color", nil).
		Order("repair_type", nil).
		Order("quality", nil).
		Limit(catalogListLimit, "")

	if filter.Brand != "" {
		query = query.Eq("brand", filter.Brand)
	}
	if filter.Model != "" {
		query = query.Eq("model", filter.Model)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Or(fmt.Sprintf("brand.ilike.%s,model.ilike.%s,repair_type.ilike.%s", pattern, pattern, pattern), "")
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	entries := []models.CatalogEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog rows: %w", err)
	}
	return entries, nil
}

// Brands lists all distinct brands via the get_brands database function,
// bypassing the row cap on the normal listing.
func (s *SupabaseCatalog) Brands() ([]string, error) {
	data := s.client.Rpc("get_brands", "", nil)

	brands := []string{}
	if err := json.Unmarshal([]byte(data), &brands); err != nil {
		return nil, fmt.Errorf("get_brands rpc: %w", err)
	}
	return brands, nil
}

func (s *SupabaseCatalog) Create(row map[string]interface{}) (string, error) {
	data, _, err := s.client.From(catalogTable).
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		return "", fmt.Errorf("insert catalog entry: %w", err)
	}

	var created []models.CatalogEntry
	if err := json.Unmarshal(data, &created); err != nil {
		return "", fmt.Errorf("parse insert response: %w", err)
	}
	if len(created) == 0 {
		return "", fmt.Errorf("insert catalog entry: no row returned")
	}
	return created[0].ID, nil
}

func (s *SupabaseCatalog) Update(id string, patch map[string]interface{}) error {
	_, _, err := s.client.From(catalogTable).
		Update(patch, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("update catalog entry %s: %w", id, err)
	}
	return nil
}

func (s *SupabaseCatalog) Delete(id string) error {
	_, _, err := s.client.From(catalogTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("delete catalog entry %s: %w", id, err)
	}
	return nil
}
