package sqlstore

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Prices are stored as decimal text so they round-trip exactly on every dialect.

type customerModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	FullName    string `gorm:"not null"`
	Email       string
	PhoneNumber string
	Address     string
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (customerModel) TableName() string { return "customers" }

type catalogItemModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"not null"`
	ProductType string `gorm:"not null"`
	Material    string `gorm:"not null"`
	BasePrice   string `gorm:"not null"`
	CreatedAt   time.Time
}

func (catalogItemModel) TableName() string { return "catalog_items" }

type quotationModel struct {
	ID         string `gorm:"primaryKey;size:36"`
	CustomerID string `gorm:"index;not null"`
	UserID     string
	TotalPrice string               `gorm:"not null"`
	Status     string               `gorm:"not null"`
	Lines      []quotationLineModel `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (quotationModel) TableName() string { return "quotations" }

type quotationLineModel struct {
	QuotationID   string `gorm:"primaryKey;size:36"`
	LineNo        int    `gorm:"primaryKey;autoIncrement:false"`
	CatalogItemID string `gorm:"index;not null"`
	Width         float64
	Height        float64
	Quantity      int
	Price         string `gorm:"not null"`
}

func (quotationLineModel) TableName() string { return "quotation_lines" }

type paymentModel struct {
	ID                 string `gorm:"primaryKey;size:36"`
	QuotationID        string `gorm:"index;not null"`
	Date               time.Time
	Status             string
	Amount             string
	ProviderPayloadRaw string
}

func (paymentModel) TableName() string { return "payments" }

// Migrate creates or updates every table used by the SQL repositories.
func Migrate(db *gorm.DB) error {
	for _, m := range []interface{}{
		&customerModel{},
		&catalogItemModel{},
		&quotationModel{},
		&quotationLineModel{},
		&paymentModel{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}
