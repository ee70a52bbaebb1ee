package usecase

import (
	"context"
	"errors"
	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/infrastructure/logger"
	"reliant_crm/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCatalogItemNotFound     = errors.New("catalog item not found")
	ErrInvalidCatalogItemID    = errors.New("invalid catalog item id")
	ErrInvalidCatalogItemInput = errors.New("invalid catalog item input")
)

// ICatalogUseCase exposes the product catalog. Items are reference data:
// created once, never updated.
type ICatalogUseCase interface {
	Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	List(ctx context.Context) ([]entities.CatalogItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogItemRepository
	log  *logger.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogItemRepository, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, log: logger.OrNop(log).Component("catalog.usecase")}
}

func (u *CatalogUseCase) Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || !item.ProductType.Valid() || !item.Material.Valid() || !item.BasePrice.IsPositive() {
		return entities.CatalogItem{}, ErrInvalidCatalogItemInput
	}
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		u.log.Error("catalog item create failed", "error", err)
		return entities.CatalogItem{}, err
	}
	u.log.Info("catalog item created", "catalog_item_id", created.ID, "product_type", created.ProductType, "material", created.Material)
	return created, nil
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogItem{}, ErrInvalidCatalogItemID
	}
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if item.ID == "" {
		return entities.CatalogItem{}, ErrCatalogItemNotFound
	}
	return item, nil
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.CatalogItem, error) {
	return u.repo.List(ctx)
}
