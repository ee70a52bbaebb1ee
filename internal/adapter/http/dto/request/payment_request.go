package request

import "encoding/json"

// QuotationPaymentCreateRequest wraps the provider payload. The body may also
// be the provider payload itself; `mp_payload` is accepted as an alias.
type QuotationPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
	MPPayload       json.RawMessage `json:"mp_payload"`
}
