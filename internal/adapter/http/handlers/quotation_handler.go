package handlers

import (
	"context"
	"errors"
	"net/http"
	request "reliant_crm/internal/adapter/http/dto/request"
	response "reliant_crm/internal/adapter/http/dto/response"
	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/usecase"
	"reliant_crm/pkg"

	"github.com/gin-gonic/gin"
)

// QuotationHandler handles HTTP requests for quotations. Every price it
// returns comes from the pricing engine.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation godoc
// @Summary Create a quotation
// @Description Prices every item as base_price * width * height * quantity and stores the quotation as Draft.
// @Tags quotations
// @Accept json
// @Produce json
// @Param quotation body request.QuotationCreateRequest true "Quotation"
// @Success 201 {object} response.QuotationResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.QuotationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	q, err := h.usecase.CreateQuotation(c.Request.Context(), payload.ToCommand())
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuotation(q))
}

// GetQuotation godoc
// @Summary Get a quotation
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.QuotationResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// ListCustomerQuotations godoc
// @Summary List the quotations of a customer
// @Tags quotations
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} response.QuotationResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /customers/{id}/quotations [get]
func (h *QuotationHandler) ListCustomerQuotations(c *gin.Context) {
	qs, err := h.usecase.ListByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(qs))
}

// DeleteQuotation godoc
// @Summary Delete a quotation and its items
// @Tags quotations
// @Param id path string true "Quotation ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AcceptQuotation godoc
// @Summary Accept a draft quotation
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.QuotationResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /quotations/{id}/accept [patch]
func (h *QuotationHandler) AcceptQuotation(c *gin.Context) {
	h.patchStatus(c, h.usecase.Accept)
}

// RejectQuotation godoc
// @Summary Reject a draft quotation
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.QuotationResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /quotations/{id}/reject [patch]
func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	h.patchStatus(c, h.usecase.Reject)
}

// CancelQuotation godoc
// @Summary Cancel a draft quotation
// @Tags quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.QuotationResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /quotations/{id}/cancel [patch]
func (h *QuotationHandler) CancelQuotation(c *gin.Context) {
	h.patchStatus(c, h.usecase.Cancel)
}

func (h *QuotationHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quotation, error),
) {
	q, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidQuotationInput):
		return pkg.NewDomainError("INVALID_QUOTATION_INPUT", "Invalid quotation payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Quotation is not in Draft status", http.StatusConflict)
	default:
		return internalError(err)
	}
}
