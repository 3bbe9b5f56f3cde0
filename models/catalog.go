package models

// CatalogEntry is one price point in the repair_catalog table.
// Price is nullable: null means "op aanvraag" (price on request).
type CatalogEntry struct {
	ID         string   `json:"id" db:"id"`
	Brand      string   `json:"brand" db:"brand"`
	Model      string   `json:"model" db:"model"`
	Color      string   `json:"color" db:"color"`
	RepairType string   `json:"repair_type" db:"repair_type"`
	Quality    string   `json:"quality" db:"quality"`
	Price      *float64 `json:"price" db:"price"`
}

// CatalogFilter narrows the catalog listing. Search does a case-insensitive
// substring match across brand, model and repair_type.
type CatalogFilter struct {
	Brand  string
	Model  string
	Search string
}

type CreateCatalogInput struct {
	Brand      string      `json:"brand"`
	Model      string      `json:"model"`
	Color      string      `json:"color"`
	RepairType string      `json:"repair_type"`
	Quality    string      `json:"quality"`
	Price      interface{} `json:"price"`
}
