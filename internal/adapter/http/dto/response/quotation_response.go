package response

import (
	"reliant_crm/internal/domain/entities"
	"time"
)

const (
	PriceKindQuote    = "quote"
	PriceKindEstimate = "estimate"
)

type QuotationItemResponse struct {
	CatalogItemID string               `json:"catalog_item_id"`
	Width         float64              `json:"width"`
	Height        float64              `json:"height"`
	Quantity      int                  `json:"quantity"`
	Price         entities.QuotedPrice `json:"price"`
}

// QuotationResponse carries deterministic prices only; PriceKind is always
// "quote".
type QuotationResponse struct {
	QuotationID string                  `json:"quotation_id"`
	ID          string                  `json:"id"`
	CustomerID  string                  `json:"customer_id"`
	UserID      string                  `json:"user_id,omitempty"`
	Status      string                  `json:"status"`
	TotalPrice  entities.QuotedPrice    `json:"total_price"`
	PriceKind   string                  `json:"price_kind"`
	Items       []QuotationItemResponse `json:"items"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	items := make([]QuotationItemResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		items = append(items, QuotationItemResponse{
			CatalogItemID: l.CatalogItemID,
			Width:         l.Width,
			Height:        l.Height,
			Quantity:      l.Quantity,
			Price:         l.Price,
		})
	}
	return QuotationResponse{
		QuotationID: q.ID,
		ID:          q.ID,
		CustomerID:  q.CustomerID,
		UserID:      q.UserID,
		Status:      string(q.Status),
		TotalPrice:  q.TotalPrice,
		PriceKind:   PriceKindQuote,
		Items:       items,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q))
	}
	return out
}
