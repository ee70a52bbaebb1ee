package interfaces

import (
	"context"
	"reliant_crm/internal/domain/entities"
)

//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/customer_repository_mock.go -package=mock_interfaces

// ICustomerRepository abstracts persistence for Customer.
//
// Lookups return a zero Customer (empty ID) and a nil error when nothing matches.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, offset, limit int) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
}
