package sqlstore

import (
	"context"
	"errors"

	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

var _ interfaces.ICatalogItemRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	m := catalogItemModel{
		ID:          item.ID,
		Name:        item.Name,
		ProductType: string(item.ProductType),
		Material:    string(item.Material),
		BasePrice:   item.BasePrice.String(),
		CreatedAt:   item.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	var m catalogItemModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.CatalogItem{}, nil
	}
	if err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogItemModel(m)
}

func (r *CatalogRepository) List(ctx context.Context) ([]entities.CatalogItem, error) {
	var ms []catalogItemModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]entities.CatalogItem, 0, len(ms))
	for _, m := range ms {
		item, err := fromCatalogItemModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func fromCatalogItemModel(m catalogItemModel) (entities.CatalogItem, error) {
	price, err := decimal.NewFromString(m.BasePrice)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	return entities.CatalogItem{
		ID:          m.ID,
		Name:        m.Name,
		ProductType: entities.ProductType(m.ProductType),
		Material:    entities.Material(m.Material),
		BasePrice:   price,
		CreatedAt:   m.CreatedAt.UTC(),
	}, nil
}
