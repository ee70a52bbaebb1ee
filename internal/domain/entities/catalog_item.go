package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductTypeWindow ProductType = "Window"
	ProductTypeDoor   ProductType = "Door"
)

func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeWindow, ProductTypeDoor:
		return true
	}
	return false
}

type Material string

const (
	MaterialUPVC      Material = "uPVC"
	MaterialAluminium Material = "Aluminium"
	MaterialTimber    Material = "Timber"
)

func (m Material) Valid() bool {
	switch m {
	case MaterialUPVC, MaterialAluminium, MaterialTimber:
		return true
	}
	return false
}

// CatalogItem is a sellable product type/material combination.
//
// BasePrice is a rate per square meter. Catalog items are reference data and
// are never modified once created.
type CatalogItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ProductType ProductType     `json:"product_type"`
	Material    Material        `json:"material"`
	BasePrice   decimal.Decimal `json:"base_price"`
	CreatedAt   time.Time       `json:"created_at"`
}
