package request

import (
	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/usecase"
	"strings"
)

type QuotationItemRequest struct {
	CatalogItemID string `json:"catalog_item_id"`
	// ProductID is accepted as an alias of CatalogItemID.
	ProductID string  `json:"product_id"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Quantity  *int    `json:"quantity"`
}

// ResolveCatalogItemID prefers catalog_item_id and falls back to product_id.
func (r QuotationItemRequest) ResolveCatalogItemID() string {
	if v := strings.TrimSpace(r.CatalogItemID); v != "" {
		return v
	}
	return strings.TrimSpace(r.ProductID)
}

// ResolveQuantity defaults an omitted quantity to 1.
func (r QuotationItemRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type QuotationCreateRequest struct {
	CustomerID string                 `json:"customer_id" binding:"required"`
	UserID     string                 `json:"user_id"`
	Items      []QuotationItemRequest `json:"items" binding:"required,min=1"`
}

func (r QuotationCreateRequest) ToCommand() usecase.CreateQuotationCommand {
	items := make([]entities.LineRequest, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LineRequest{
			CatalogItemID: it.ResolveCatalogItemID(),
			Width:         it.Width,
			Height:        it.Height,
			Quantity:      it.ResolveQuantity(),
		})
	}
	return usecase.CreateQuotationCommand{
		CustomerID: strings.TrimSpace(r.CustomerID),
		UserID:     strings.TrimSpace(r.UserID),
		Items:      items,
	}
}
