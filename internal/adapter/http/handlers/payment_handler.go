package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	response "reliant_crm/internal/adapter/http/dto/response"
	"reliant_crm/internal/infrastructure/logger"
	"reliant_crm/internal/usecase"
	"reliant_crm/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles deposits paid against accepted quotations.
type PaymentHandler struct {
	usecase  usecase.IQuotationPaymentUseCase
	mockMode bool
	log      *logger.Logger
}

func NewPaymentHandler(uc usecase.IQuotationPaymentUseCase, mockMode bool, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode, log: logger.OrNop(log).Component("payment.handler")}
}

// CreateDeposit godoc
// @Summary Pay a deposit for an accepted quotation
// @Description Body is the payment provider payload, optionally wrapped in provider_payload.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 201 {object} response.QuotationPaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /quotations/{id}/payments [post]
func (h *PaymentHandler) CreateDeposit(c *gin.Context) {
	quotationID := c.Param("id")
	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			h.log.Warn("invalid payment payload", "quotation_id", quotationID, "error", err)
			writeError(c, errInvalidRequest)
			return
		}
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), quotationID, payload)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuotationPayment(created))
}

// ListPayments godoc
// @Summary List the payments of a quotation
// @Tags payments
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {array} response.QuotationPaymentResponse
// @Router /quotations/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByQuotationID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationPayments(payments))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, key := range []string{"provider_payload", "mp_payload"} {
			wrapped, ok := envelope[key]
			if !ok {
				continue
			}
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New(key + " cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuotationID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_ACCEPTED", "Quotation not accepted", http.StatusConflict)
	default:
		return internalError(err)
	}
}
