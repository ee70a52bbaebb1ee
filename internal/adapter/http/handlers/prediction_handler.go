package handlers

import (
	"errors"
	"net/http"
	request "reliant_crm/internal/adapter/http/dto/request"
	response "reliant_crm/internal/adapter/http/dto/response"
	"reliant_crm/internal/estimation"
	"reliant_crm/internal/usecase"
	"reliant_crm/pkg"

	"github.com/gin-gonic/gin"
)

// PredictionHandler serves price estimates and model management. Its prices
// are labelled "estimate" and never feed a quotation.
type PredictionHandler struct {
	usecase usecase.IPredictionUseCase
}

func NewPredictionHandler(uc usecase.IPredictionUseCase) *PredictionHandler {
	return &PredictionHandler{usecase: uc}
}

// PredictQuote godoc
// @Summary Estimate the price of a hypothetical item
// @Tags estimation
// @Accept json
// @Produce json
// @Param item body request.PredictQuoteRequest true "Item attributes"
// @Success 200 {object} response.PredictQuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Router /predict_quote [post]
func (h *PredictionHandler) PredictQuote(c *gin.Context) {
	var payload request.PredictQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	est, err := h.usecase.Predict(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapPredictionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(est))
}

// GetModel godoc
// @Summary Describe the loaded price model
// @Tags estimation
// @Produce json
// @Success 200 {object} response.ModelInfoResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /model [get]
func (h *PredictionHandler) GetModel(c *gin.Context) {
	a, err := h.usecase.ModelInfo(c.Request.Context())
	if err != nil {
		writeError(c, mapPredictionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromArtifact(a))
}

// ReloadModel godoc
// @Summary Reload the price model from the artifact store
// @Tags estimation
// @Produce json
// @Success 200 {object} response.ModelInfoResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /model/reload [post]
func (h *PredictionHandler) ReloadModel(c *gin.Context) {
	a, err := h.usecase.ReloadModel(c.Request.Context())
	if err != nil {
		writeError(c, mapPredictionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromArtifact(a))
}

// TrainModel godoc
// @Summary Retrain the price model from all historical quotations
// @Tags estimation
// @Produce json
// @Success 200 {object} response.ModelInfoResponse
// @Failure 422 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Router /model/train [post]
func (h *PredictionHandler) TrainModel(c *gin.Context) {
	a, err := h.usecase.TrainModel(c.Request.Context())
	if err != nil {
		writeError(c, mapPredictionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromArtifact(a))
}

func mapPredictionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPredictionInput):
		return pkg.NewDomainError("INVALID_PREDICTION_INPUT", "Invalid prediction input", err, http.StatusBadRequest)
	case errors.Is(err, estimation.ErrModelUnavailable), errors.Is(err, estimation.ErrArtifactNotFound), errors.Is(err, estimation.ErrStaleArtifact):
		return pkg.NewDomainError("MODEL_UNAVAILABLE", "Price model is not loaded", err, http.StatusServiceUnavailable)
	case errors.Is(err, estimation.ErrData):
		return pkg.NewDomainError("INSUFFICIENT_TRAINING_DATA", "Not enough historical quotations to train", err, http.StatusUnprocessableEntity)
	case errors.Is(err, estimation.ErrConnectivity):
		return pkg.NewDomainError("TRAINING_SOURCE_UNAVAILABLE", "Historical quotations could not be read", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrTrainingInProgress):
		return pkg.NewDomainErrorSimple("TRAINING_IN_PROGRESS", "Model training already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrTrainingNotConfigured):
		return pkg.NewDomainErrorSimple("TRAINING_NOT_CONFIGURED", "Model training is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, estimation.ErrInference):
		return pkg.NewDomainError("INFERENCE_ERROR", "Price model evaluation failed", err, http.StatusInternalServerError)
	default:
		return internalError(err)
	}
}
