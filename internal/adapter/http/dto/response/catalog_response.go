package response

import (
	"reliant_crm/internal/domain/entities"
	"time"
)

type CatalogItemResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	ProductType string               `json:"product_type"`
	Material    string               `json:"material"`
	BasePrice   entities.QuotedPrice `json:"base_price"`
	CreatedAt   time.Time            `json:"created_at"`
}

func FromCatalogItem(it entities.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		ProductType: string(it.ProductType),
		Material:    string(it.Material),
		BasePrice:   entities.NewQuotedPrice(it.BasePrice),
		CreatedAt:   it.CreatedAt,
	}
}

func FromCatalogItems(items []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromCatalogItem(it))
	}
	return out
}
