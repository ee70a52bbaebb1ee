package interfaces

import (
	"context"
	"reliant_crm/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_mock.go -package=mock_interfaces

// ICatalogItemRepository abstracts persistence for CatalogItem.
//
// Catalog items are immutable reference data: there is no update.
type ICatalogItemRepository interface {
	Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	List(ctx context.Context) ([]entities.CatalogItem, error)
}
