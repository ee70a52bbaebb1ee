package entities

import "time"

// QuotationStatus represents the lifecycle of a quotation.
//
// A quotation is created as Draft; Accepted, Rejected and Cancelled are final
// and can only be reached from Draft.
type QuotationStatus string

const (
	QuotationStatusDraft     QuotationStatus = "Draft"
	QuotationStatusAccepted  QuotationStatus = "Accepted"
	QuotationStatusRejected  QuotationStatus = "Rejected"
	QuotationStatusCancelled QuotationStatus = "Cancelled"
)

// CanTransitionTo reports whether a quotation in status s may move to next.
func (s QuotationStatus) CanTransitionTo(next QuotationStatus) bool {
	if s != QuotationStatusDraft {
		return false
	}
	switch next {
	case QuotationStatusAccepted, QuotationStatusRejected, QuotationStatusCancelled:
		return true
	}
	return false
}

// PricedLine is one item entry of a quotation. It is owned by exactly one
// quotation and is immutable once the quotation is created.
type PricedLine struct {
	CatalogItemID string      `json:"catalog_item_id"`
	Width         float64     `json:"width"`
	Height        float64     `json:"height"`
	Quantity      int         `json:"quantity"`
	Price         QuotedPrice `json:"price"`
}

// Quotation is a customer-facing collection of priced lines.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - lines are embedded in the quotation item, so deleting the quotation
//     deletes its lines.
//
// TotalPrice always equals the sum of the line prices at creation time.
type Quotation struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	UserID     string          `json:"user_id"`
	TotalPrice QuotedPrice     `json:"total_price"`
	Status     QuotationStatus `json:"status"`
	Lines      []PricedLine    `json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// LineRequest is an unpriced quotation line as requested by a caller.
type LineRequest struct {
	CatalogItemID string
	Width         float64
	Height        float64
	Quantity      int
}
