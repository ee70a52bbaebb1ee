package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"reliant_crm/internal/adapter/http/handlers"
	"reliant_crm/internal/adapter/http/handlers/mocks"
	"reliant_crm/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	quotations *mocks.MockIQuotationUseCase
	payments   *mocks.MockIQuotationPaymentUseCase
	prediction *mocks.MockIPredictionUseCase
}

func newTestRouter(t *testing.T) (*gin.Engine, routerMocks) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := routerMocks{
		quotations: mocks.NewMockIQuotationUseCase(ctrl),
		payments:   mocks.NewMockIQuotationPaymentUseCase(ctrl),
		prediction: mocks.NewMockIPredictionUseCase(ctrl),
	}
	h := Handlers{
		Customers:  handlers.NewCustomerHandler(mocks.NewMockICustomerUseCase(ctrl)),
		Catalog:    handlers.NewCatalogHandler(mocks.NewMockICatalogUseCase(ctrl)),
		Quotations: handlers.NewQuotationHandler(m.quotations),
		Prediction: handlers.NewPredictionHandler(m.prediction),
		Payments:   handlers.NewPaymentHandler(m.payments, false, nil),
	}
	return NewRouter(h, nil), m
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := serve(r, http.MethodGet, "/v1/ping")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("customer quotations are routed to the quotation handler", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.quotations.EXPECT().ListByCustomer(gomock.Any(), "c-1").Return([]entities.Quotation{}, nil)
		if w := serve(r, http.MethodGet, "/v1/customers/c-1/quotations"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("payments are nested under quotations", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.payments.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.QuotationPayment{}, nil)
		if w := serve(r, http.MethodGet, "/v1/quotations/q-1/payments"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		r, _ := newTestRouter(t)
		if w := serve(r, http.MethodGet, "/v1/estimates"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRecoveryWritesErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setMiddlewares(r, nil)
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/boom")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Body.String() != `{"code":"INTERNAL_ERROR","message":"An internal error occurred"}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
