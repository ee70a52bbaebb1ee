package handlers

import (
	"errors"
	"net/http"
	request "reliant_crm/internal/adapter/http/dto/request"
	response "reliant_crm/internal/adapter/http/dto/response"
	"reliant_crm/internal/usecase"
	"reliant_crm/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for catalog items.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// CreateCatalogItem godoc
// @Summary Create a catalog item
// @Tags catalog
// @Accept json
// @Produce json
// @Param item body request.CatalogItemCreateRequest true "Catalog item"
// @Success 201 {object} response.CatalogItemResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /catalog-items [post]
func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	var payload request.CatalogItemCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogItem(created))
}

// ListCatalogItems godoc
// @Summary List catalog items
// @Tags catalog
// @Produce json
// @Success 200 {array} response.CatalogItemResponse
// @Router /catalog-items [get]
func (h *CatalogHandler) ListCatalogItems(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItems(items))
}

// GetCatalogItem godoc
// @Summary Get a catalog item
// @Tags catalog
// @Produce json
// @Param id path string true "Catalog item ID"
// @Success 200 {object} response.CatalogItemResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /catalog-items/{id} [get]
func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogItemID), errors.Is(err, usecase.ErrInvalidCatalogItemInput):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
