package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reliant_crm/internal/adapter/http/handlers/mocks"
	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newQuotationRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuotationUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	h := NewQuotationHandler(uc)

	r := gin.New()
	r.POST("/v1/quotations", h.CreateQuotation)
	r.GET("/v1/quotations/:id", h.GetQuotation)
	r.DELETE("/v1/quotations/:id", h.DeleteQuotation)
	r.PATCH("/v1/quotations/:id/accept", h.AcceptQuotation)
	r.PATCH("/v1/quotations/:id/reject", h.RejectQuotation)
	r.PATCH("/v1/quotations/:id/cancel", h.CancelQuotation)
	r.GET("/v1/customers/:id/quotations", h.ListCustomerQuotations)
	return r, uc
}

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newQuotationRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		r, _ := newQuotationRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"customer_id":"c-1","items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{usecase.ErrCustomerNotFound, http.StatusNotFound},
			{usecase.ErrCatalogItemNotFound, http.StatusNotFound},
			{usecase.ErrInvalidQuotationInput, http.StatusBadRequest},
			{errors.New("db"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			r, uc := newQuotationRouter(t)
			uc.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"customer_id":"c-1","items":[{"catalog_item_id":"w-1","width":1,"height":1}]}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		price := entities.NewQuotedPrice(decimal.RequireFromString("360"))
		uc.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, cmd usecase.CreateQuotationCommand) (entities.Quotation, error) {
				if cmd.CustomerID != "c-1" || len(cmd.Items) != 1 || cmd.Items[0].Quantity != 2 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Quotation{
					ID:         "q-1",
					CustomerID: "c-1",
					Status:     entities.QuotationStatusDraft,
					TotalPrice: price,
					Lines:      []entities.PricedLine{{CatalogItemID: "w-1", Width: 1.2, Height: 1.5, Quantity: 2, Price: price}},
					CreatedAt:  time.Now().UTC(),
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"customer_id":"c-1","items":[{"catalog_item_id":"w-1","width":1.2,"height":1.5,"quantity":2}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["quotation_id"] != "q-1" || body["total_price"] != float64(360) || body["price_kind"] != "quote" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestQuotationHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("accept success", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Accept(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusAccepted}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/accept", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject conflict", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Reject(gomock.Any(), "q-1").Return(entities.Quotation{}, usecase.ErrInvalidStatusTransition)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/reject", nil))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusCancelled}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/cancel", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/quotations/q-1", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("list by customer", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().ListByCustomer(gomock.Any(), "c-1").Return([]entities.Quotation{{ID: "q-1"}, {ID: "q-2"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/customers/c-1/quotations", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
		}
	})
}
