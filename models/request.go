package models

import "time"

// RepairRequest mirrors a row in the repair_requests table. The id and
// created_at are assigned by the store. price_text, preferred_date and
// preferred_time are free text straight from the storefront form.
type RepairRequest struct {
	ID            string    `json:"id" db:"id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	CustomerName  string    `json:"customer_name" db:"customer_name"`
	CustomerEmail string    `json:"customer_email" db:"customer_email"`
	CustomerPhone string    `json:"customer_phone" db:"customer_phone"`
	Brand         string    `json:"brand" db:"brand"`
	Model         string    `json:"model" db:"model"`
	Color         string    `json:"color" db:"color"`
	Issue         string    `json:"issue" db:"issue"`
	PriceText     string    `json:"price_text" db:"price_text"`
	PreferredDate string    `json:"preferred_date" db:"preferred_date"`
	PreferredTime string    `json:"preferred_time" db:"preferred_time"`
	Status        string    `json:"status" db:"status"`
	Condition     *string   `json:"condition,omitempty" db:"condition"`
	Quality       *string   `json:"quality,omitempty" db:"quality"`
	Warranty      *string   `json:"warranty,omitempty" db:"warranty"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
}

// Request statuses. Transitions are one-way: pending -> approved | rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type CreateRequestInput struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Color         string `json:"color"`
	Issue         string `json:"issue"`
	PriceText     string `json:"price_text"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
}

type ReviewInput struct {
	ID     string `json:"id"`
	Reason string `json:"reason,omitempty"`
}

type UpdateRequestInput struct {
	ID    string                 `json:"id"`
	Patch map[string]interface{} `json:"patch"`
}

// MailResult reports the outcome of the best-effort notification step.
// It never influences the HTTP status: once the store mutation committed
// the response is 200 and mail failure is data, not an error.
type MailResult struct {
	Sent    bool   `json:"mail_sent"`
	PDFSent *bool  `json:"pdf_sent,omitempty"`
	Stage   string `json:"stage,omitempty"`
	Error   string `json:"mail_error,omitempty"`
}

type IntakeResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
	MailResult
}

type ReviewResponse struct {
	OK   bool           `json:"ok"`
	Data *RepairRequest `json:"data"`
	MailResult
}

type EditResponse struct {
	OK   bool           `json:"ok"`
	Data *RepairRequest `json:"data"`
}
