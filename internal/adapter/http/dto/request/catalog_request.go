package request

import (
	"reliant_crm/internal/domain/entities"
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogItemCreateRequest accepts base_price either as a JSON number or a
// decimal string.
type CatalogItemCreateRequest struct {
	Name        string          `json:"name" binding:"required"`
	ProductType string          `json:"product_type" binding:"required"`
	Material    string          `json:"material" binding:"required"`
	BasePrice   decimal.Decimal `json:"base_price"`
}

func (r CatalogItemCreateRequest) ToEntity() entities.CatalogItem {
	return entities.CatalogItem{
		Name:        strings.TrimSpace(r.Name),
		ProductType: entities.ProductType(strings.TrimSpace(r.ProductType)),
		Material:    entities.Material(strings.TrimSpace(r.Material)),
		BasePrice:   r.BasePrice,
	}
}
