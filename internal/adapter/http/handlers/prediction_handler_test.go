package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"reliant_crm/internal/adapter/http/handlers/mocks"
	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/estimation"
	"reliant_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPredictionRouter(t *testing.T) (*gin.Engine, *mocks.MockIPredictionUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPredictionUseCase(ctrl)
	h := NewPredictionHandler(uc)

	r := gin.New()
	r.POST("/v1/predict_quote", h.PredictQuote)
	r.GET("/v1/model", h.GetModel)
	r.POST("/v1/model/reload", h.ReloadModel)
	r.POST("/v1/model/train", h.TrainModel)
	return r, uc
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPredictionHandler_PredictQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validBody := `{"width":1.2,"height":1.5,"quantity":2,"product_type":"Window","material":"uPVC"}`

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newPredictionRouter(t)
		if w := postJSON(r, "/v1/predict_quote", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing material", func(t *testing.T) {
		r, _ := newPredictionRouter(t)
		if w := postJSON(r, "/v1/predict_quote", `{"width":1,"height":1,"product_type":"Window"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{estimation.ErrModelUnavailable, http.StatusServiceUnavailable},
			{fmt.Errorf("%w: bad", usecase.ErrInvalidPredictionInput), http.StatusBadRequest},
			{fmt.Errorf("%w: nan", estimation.ErrInference), http.StatusInternalServerError},
			{errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			r, uc := newPredictionRouter(t)
			uc.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(estimation.Estimate{}, tc.err)

			if w := postJSON(r, "/v1/predict_quote", validBody); w.Code != tc.want {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPredictionRouter(t)
		uc.EXPECT().Predict(gomock.Any(), estimation.PredictionInput{
			Width: 1.2, Height: 1.5, Quantity: 2,
			ProductType: entities.ProductTypeWindow, Material: entities.MaterialUPVC,
		}).Return(estimation.Estimate{
			Price:            entities.NewEstimatedPrice(412.345),
			SchemaID:         "abc",
			UnseenCategories: []string{"material=uPVC"},
		}, nil)

		w := postJSON(r, "/v1/predict_quote", validBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["predicted_price"] != 412.35 || body["price_kind"] != "estimate" {
			t.Fatalf("unexpected body: %v", body)
		}
		if warnings, ok := body["warnings"].([]any); !ok || len(warnings) != 1 {
			t.Fatalf("expected one warning, got %v", body["warnings"])
		}
	})
}

func TestPredictionHandler_Model(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r2 := 0.93
	artifact := &estimation.Artifact{
		ID:        "quotation-price-model",
		SchemaID:  "abc",
		Algorithm: estimation.AlgorithmLinear,
		Columns:   []string{"width", "height", "quantity"},
		Metrics:   estimation.Metrics{R2: &r2, TrainRows: 8, TestRows: 2},
	}

	t.Run("info unavailable", func(t *testing.T) {
		r, uc := newPredictionRouter(t)
		uc.EXPECT().ModelInfo(gomock.Any()).Return(nil, estimation.ErrModelUnavailable)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/model", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("info", func(t *testing.T) {
		r, uc := newPredictionRouter(t)
		uc.EXPECT().ModelInfo(gomock.Any()).Return(artifact, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/model", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["schema_id"] != "abc" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("reload stale", func(t *testing.T) {
		r, uc := newPredictionRouter(t)
		uc.EXPECT().ReloadModel(gomock.Any()).Return(nil, estimation.ErrStaleArtifact)

		if w := postJSON(r, "/v1/model/reload", ""); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("train insufficient data", func(t *testing.T) {
		r, uc := newPredictionRouter(t)
		uc.EXPECT().TrainModel(gomock.Any()).Return(nil, fmt.Errorf("%w: 0 rows", estimation.ErrData))

		if w := postJSON(r, "/v1/model/train", ""); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("train in progress", func(t *testing.T) {
		r, uc := newPredictionRouter(t)
		uc.EXPECT().TrainModel(gomock.Any()).Return(nil, usecase.ErrTrainingInProgress)

		if w := postJSON(r, "/v1/model/train", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("train success", func(t *testing.T) {
		r, uc := newPredictionRouter(t)
		uc.EXPECT().TrainModel(gomock.Any()).Return(artifact, nil)

		if w := postJSON(r, "/v1/model/train", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
