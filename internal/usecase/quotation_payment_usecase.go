package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/infrastructure/logger"
	"reliant_crm/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidPaymentQuotationID      = errors.New("invalid quotation_id")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrQuotationNotAccepted           = errors.New("quotation not accepted")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions configures how deposits reach the payment provider.
type PaymentOptions struct {
	// MockMode skips the provider and records an approved payment.
	MockMode bool
	// AccessToken is only inspected for the sandbox prefix ("TEST-").
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IQuotationPaymentUseCase records deposits paid against accepted quotations.
type IQuotationPaymentUseCase interface {
	CreateDeposit(ctx context.Context, quotationID string, providerPayload json.RawMessage) (entities.QuotationPayment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error)
}

type QuotationPaymentUseCase struct {
	repo       interfaces.IQuotationPaymentRepository
	quotations interfaces.IQuotationRepository
	gateway    interfaces.IPaymentGateway
	opts       PaymentOptions
	log        *logger.Logger
	now        func() time.Time
}

var _ IQuotationPaymentUseCase = (*QuotationPaymentUseCase)(nil)

func NewQuotationPaymentUseCase(repo interfaces.IQuotationPaymentRepository, quotations interfaces.IQuotationRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions, log *logger.Logger) *QuotationPaymentUseCase {
	return &QuotationPaymentUseCase{
		repo:       repo,
		quotations: quotations,
		gateway:    gateway,
		opts:       opts,
		log:        logger.OrNop(log).Component("payment.usecase"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuotationPaymentUseCase) CreateDeposit(ctx context.Context, quotationID string, payload json.RawMessage) (entities.QuotationPayment, error) {
	mockMode := u.opts.MockMode
	quotationID = strings.TrimSpace(quotationID)
	u.log.Debug("deposit start", "quotation_id", quotationID, "payload_len", len(payload), "mock", mockMode)
	if quotationID == "" {
		return entities.QuotationPayment{}, ErrInvalidPaymentQuotationID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			return entities.QuotationPayment{}, ErrInvalidProviderPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.QuotationPayment{}, ErrPaymentGatewayNotConfigured
	}

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		u.log.Error("loading quotation failed", "quotation_id", quotationID, "error", err)
		return entities.QuotationPayment{}, err
	}
	if q.ID == "" {
		return entities.QuotationPayment{}, ErrQuotationNotFound
	}
	if q.Status != entities.QuotationStatusAccepted {
		u.log.Info("deposit refused", "quotation_id", quotationID, "status", q.Status)
		return entities.QuotationPayment{}, ErrQuotationNotAccepted
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return entities.QuotationPayment{}, ErrInvalidProviderPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.QuotationPayment{}, ErrInvalidProviderPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			return entities.QuotationPayment{}, ErrInvalidProviderPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quotationID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Quotation %s", quotationID)
	}
	// The stored quotation total is the amount charged.
	reqMap["transaction_amount"] = q.TotalPrice.Float64()

	var (
		providerID     string
		providerStatus string
		providerResp   json.RawMessage
	)
	if mockMode {
		providerID, providerStatus, providerResp, err = u.mockPayment(reqMap)
	} else {
		body, mErr := json.Marshal(reqMap)
		if mErr != nil {
			return entities.QuotationPayment{}, mErr
		}
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, body)
		err = classifyGatewayError(err)
	}
	if err != nil {
		u.log.Error("payment gateway failed", "quotation_id", quotationID, "error", err)
		return entities.QuotationPayment{}, err
	}

	var parsed map[string]interface{}
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			u.log.Warn("provider response is not a json object", "quotation_id", quotationID, "error", err)
		}
	}

	p := entities.QuotationPayment{
		ID:                 providerID,
		QuotationID:        quotationID,
		Date:               u.now(),
		Status:             paymentStatusFromProvider(providerStatus),
		Amount:             q.TotalPrice,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("payment repository create failed", "quotation_id", quotationID, "payment_id", p.ID, "error", err)
		return entities.QuotationPayment{}, err
	}
	u.log.Info("deposit recorded", "quotation_id", quotationID, "payment_id", created.ID, "status", created.Status)
	return created, nil
}

func (u *QuotationPaymentUseCase) mockPayment(req map[string]any) (string, string, json.RawMessage, error) {
	now := u.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	u.log.Info("mock mode: skipped payment gateway", "external_reference", req["external_reference"])
	return id, "approved", b, nil
}

func (u *QuotationPaymentUseCase) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return nil, ErrInvalidPaymentQuotationID
	}
	return u.repo.ListByQuotationID(ctx, quotationID)
}

func paymentStatusFromProvider(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func (u *QuotationPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *QuotationPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.log.Debug("mapped sandbox payer user id to email")
}

func (u *QuotationPaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
