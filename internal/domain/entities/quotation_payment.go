package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// QuotationPayment is a deposit paid against an accepted quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quotation_id-index): quotation_id
//
// ProviderPayloadRaw keeps the payment provider response body for audit;
// ProviderPayload is its parsed form when it was valid JSON.
type QuotationPayment struct {
	ID          string        `json:"id"`
	QuotationID string        `json:"quotation_id"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`
	Amount      QuotedPrice   `json:"amount"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
