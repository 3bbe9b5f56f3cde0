package store

import "github.com/Rayalistisch/gsmteam-afspraken-admin/models"

// RequestStore covers the repair_requests table. Rows and patches are passed
// as column maps so handlers control exactly which columns a write touches.
type RequestStore interface {
	Create(row map[string]interface{}) (*models.RepairRequest, error)
	Patch(id string, patch map[string]interface{}) (*models.RepairRequest, error)
	GetByID(id string) (*models.RepairRequest, error)
}

// CatalogStore covers the repair_catalog table.
type CatalogStore interface {
	List(filter models.CatalogFilter) ([]models.CatalogEntry, error)
	Brands() ([]string, error)
	Create(row map[string]interface{}) (string, error)
	Update(id string, patch map[string]interface{}) error
	Delete(id string) error
}
