package request

import (
	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/estimation"
	"strings"
)

// PredictQuoteRequest describes a hypothetical item. It carries no catalog
// reference: estimates work from attributes only.
type PredictQuoteRequest struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Quantity    *int    `json:"quantity"`
	ProductType string  `json:"product_type" binding:"required"`
	Material    string  `json:"material" binding:"required"`
}

func (r PredictQuoteRequest) ToInput() estimation.PredictionInput {
	quantity := 1
	if r.Quantity != nil {
		quantity = *r.Quantity
	}
	return estimation.PredictionInput{
		Width:       r.Width,
		Height:      r.Height,
		Quantity:    quantity,
		ProductType: entities.ProductType(strings.TrimSpace(r.ProductType)),
		Material:    entities.Material(strings.TrimSpace(r.Material)),
	}
}
