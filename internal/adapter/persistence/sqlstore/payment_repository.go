package sqlstore

import (
	"context"
	"encoding/json"

	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type QuotationPaymentRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuotationPaymentRepository = (*QuotationPaymentRepository)(nil)

func NewQuotationPaymentRepository(db *gorm.DB) *QuotationPaymentRepository {
	return &QuotationPaymentRepository{db: db}
}

func (r *QuotationPaymentRepository) Create(ctx context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error) {
	m := paymentModel{
		ID:                 p.ID,
		QuotationID:        p.QuotationID,
		Date:               p.Date,
		Status:             string(p.Status),
		Amount:             p.Amount.String(),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.QuotationPayment{}, err
	}
	return p, nil
}

func (r *QuotationPaymentRepository) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error) {
	var ms []paymentModel
	err := r.db.WithContext(ctx).Where("quotation_id = ?", quotationID).Order("date ASC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.QuotationPayment, 0, len(ms))
	for _, m := range ms {
		amount, err := entities.ParseQuotedPrice(m.Amount)
		if err != nil {
			return nil, err
		}
		p := entities.QuotationPayment{
			ID:                 m.ID,
			QuotationID:        m.QuotationID,
			Date:               m.Date.UTC(),
			Status:             entities.PaymentStatus(m.Status),
			Amount:             amount,
			ProviderPayloadRaw: json.RawMessage(m.ProviderPayloadRaw),
		}
		if m.ProviderPayloadRaw != "" {
			var payload map[string]interface{}
			if json.Unmarshal([]byte(m.ProviderPayloadRaw), &payload) == nil {
				p.ProviderPayload = payload
			}
		}
		out = append(out, p)
	}
	return out, nil
}
