package interfaces

import (
	"context"
	"reliant_crm/internal/domain/entities"
)

//go:generate mockgen -source=quotation_payment_repository_interface.go -destination=mocks/quotation_payment_repository_mock.go -package=mock_interfaces

// IQuotationPaymentRepository abstracts persistence for QuotationPayment.

type IQuotationPaymentRepository interface {
	Create(ctx context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error)
}
