package response

import (
	"reliant_crm/internal/domain/entities"
	"time"
)

type QuotationPaymentResponse struct {
	PaymentID   string               `json:"payment_id"`
	QuotationID string               `json:"quotation_id"`
	Date        time.Time            `json:"date"`
	Status      string               `json:"status"`
	Amount      entities.QuotedPrice `json:"amount"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromQuotationPayment(p entities.QuotationPayment) QuotationPaymentResponse {
	return QuotationPaymentResponse{
		PaymentID:          p.ID,
		QuotationID:        p.QuotationID,
		Date:               p.Date,
		Status:             string(p.Status),
		Amount:             p.Amount,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromQuotationPayments(ps []entities.QuotationPayment) []QuotationPaymentResponse {
	out := make([]QuotationPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromQuotationPayment(p))
	}
	return out
}
