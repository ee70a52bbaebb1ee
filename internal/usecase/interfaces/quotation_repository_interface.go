package interfaces

import (
	"context"
	"reliant_crm/internal/domain/entities"
)

//go:generate mockgen -source=quotation_repository_interface.go -destination=mocks/quotation_repository_mock.go -package=mock_interfaces

// IQuotationRepository abstracts persistence for Quotation and its lines.
//
// The service must be able to:
//   - create a quotation together with all of its priced lines
//   - move a quotation out of a given status (conditional update)
//   - delete a quotation, which deletes its lines
//   - read every historical line joined with its catalog attributes for training
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quotation, error)
	// UpdateStatus sets status to next only if the stored status is still from.
	// It returns a zero Quotation when the condition does not hold.
	UpdateStatus(ctx context.Context, id string, from, next entities.QuotationStatus) (entities.Quotation, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListTrainingRows(ctx context.Context) ([]entities.TrainingRow, error)
}
