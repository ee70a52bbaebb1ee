package usecase

import (
	"context"
	"errors"
	"testing"

	"reliant_crm/internal/domain/entities"
	mock_interfaces "reliant_crm/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type quotationFixture struct {
	repo      *mock_interfaces.MockIQuotationRepository
	customers *mock_interfaces.MockICustomerRepository
	catalog   *mock_interfaces.MockICatalogItemRepository
	uc        *QuotationUseCase
}

func newQuotationFixture(t *testing.T) quotationFixture {
	ctrl := gomock.NewController(t)
	f := quotationFixture{
		repo:      mock_interfaces.NewMockIQuotationRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		catalog:   mock_interfaces.NewMockICatalogItemRepository(ctrl),
	}
	f.uc = NewQuotationUseCase(f.repo, f.customers, f.catalog, nil)
	return f
}

func windowItem(id, base string) entities.CatalogItem {
	return entities.CatalogItem{
		ID:          id,
		Name:        "Casement",
		ProductType: entities.ProductTypeWindow,
		Material:    entities.MaterialUPVC,
		BasePrice:   decimal.RequireFromString(base),
	}
}

func TestQuotationUseCase_CreateQuotation(t *testing.T) {
	t.Run("prices every line and sums the total", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		// Resolved once even when repeated.
		f.catalog.EXPECT().GetByID(gomock.Any(), "w-1").Return(windowItem("w-1", "100"), nil).Times(1)
		f.catalog.EXPECT().GetByID(gomock.Any(), "w-2").Return(windowItem("w-2", "50.5"), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				return q, nil
			},
		)

		q, err := f.uc.CreateQuotation(context.Background(), CreateQuotationCommand{
			CustomerID: "c-1",
			UserID:     "u-1",
			Items: []entities.LineRequest{
				{CatalogItemID: "w-1", Width: 1.2, Height: 1.5, Quantity: 2},
				{CatalogItemID: "w-2", Width: 1, Height: 2, Quantity: 1},
				{CatalogItemID: "w-1", Width: 1, Height: 1, Quantity: 1},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID == "" || q.Status != entities.QuotationStatusDraft {
			t.Fatalf("unexpected quotation: %+v", q)
		}
		if len(q.Lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(q.Lines))
		}
		wantLines := []string{"360", "101", "100"}
		for i, want := range wantLines {
			if q.Lines[i].Price.String() != want {
				t.Fatalf("line %d: expected %s, got %s", i, want, q.Lines[i].Price)
			}
		}
		if q.TotalPrice.String() != "561" {
			t.Fatalf("expected total 561, got %s", q.TotalPrice)
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			cmd  CreateQuotationCommand
			want error
		}{
			{"missing customer", CreateQuotationCommand{Items: []entities.LineRequest{{CatalogItemID: "w", Width: 1, Height: 1, Quantity: 1}}}, ErrInvalidCustomerID},
			{"no items", CreateQuotationCommand{CustomerID: "c-1"}, ErrInvalidQuotationInput},
			{"zero width", CreateQuotationCommand{CustomerID: "c-1", Items: []entities.LineRequest{{CatalogItemID: "w", Width: 0, Height: 1, Quantity: 1}}}, ErrInvalidQuotationInput},
			{"zero quantity", CreateQuotationCommand{CustomerID: "c-1", Items: []entities.LineRequest{{CatalogItemID: "w", Width: 1, Height: 1, Quantity: 0}}}, ErrInvalidQuotationInput},
			{"missing item id", CreateQuotationCommand{CustomerID: "c-1", Items: []entities.LineRequest{{Width: 1, Height: 1, Quantity: 1}}}, ErrInvalidQuotationInput},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newQuotationFixture(t)
				_, err := f.uc.CreateQuotation(context.Background(), tc.cmd)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Customer{}, nil)

		_, err := f.uc.CreateQuotation(context.Background(), CreateQuotationCommand{
			CustomerID: "c-404",
			Items:      []entities.LineRequest{{CatalogItemID: "w-1", Width: 1, Height: 1, Quantity: 1}},
		})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("catalog item not found creates nothing", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		f.catalog.EXPECT().GetByID(gomock.Any(), "w-1").Return(windowItem("w-1", "100"), nil)
		f.catalog.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.CatalogItem{}, nil)

		_, err := f.uc.CreateQuotation(context.Background(), CreateQuotationCommand{
			CustomerID: "c-1",
			Items: []entities.LineRequest{
				{CatalogItemID: "w-1", Width: 1, Height: 1, Quantity: 1},
				{CatalogItemID: "missing", Width: 1, Height: 1, Quantity: 1},
			},
		})
		if !errors.Is(err, ErrCatalogItemNotFound) {
			t.Fatalf("expected ErrCatalogItemNotFound, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		f.catalog.EXPECT().GetByID(gomock.Any(), "w-1").Return(windowItem("w-1", "100"), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, errors.New("db"))

		_, err := f.uc.CreateQuotation(context.Background(), CreateQuotationCommand{
			CustomerID: "c-1",
			Items:      []entities.LineRequest{{CatalogItemID: "w-1", Width: 1, Height: 1, Quantity: 1}},
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuotationUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		f := newQuotationFixture(t)
		if _, err := f.uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{}, nil)
		if _, err := f.uc.GetByID(context.Background(), "q-1"); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("ListByCustomer unknown customer", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)
		if _, err := f.uc.ListByCustomer(context.Background(), "c-1"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("ListByCustomer", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		f.repo.EXPECT().ListByCustomerID(gomock.Any(), "c-1").Return([]entities.Quotation{{ID: "q-1"}, {ID: "q-2"}}, nil)

		got, err := f.uc.ListByCustomer(context.Background(), "c-1")
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}

func TestQuotationUseCase_Transitions(t *testing.T) {
	t.Run("accept draft", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusDraft}, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusDraft, entities.QuotationStatusAccepted).
			Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusAccepted}, nil)

		q, err := f.uc.Accept(context.Background(), "q-1")
		if err != nil || q.Status != entities.QuotationStatusAccepted {
			t.Fatalf("unexpected result: %+v %v", q, err)
		}
	})

	t.Run("final status cannot move", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusRejected}, nil)

		if _, err := f.uc.Cancel(context.Background(), "q-1"); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusDraft}, nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusDraft, entities.QuotationStatusRejected).
			Return(entities.Quotation{}, nil)

		if _, err := f.uc.Reject(context.Background(), "q-1"); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestQuotationUseCase_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.repo.EXPECT().Delete(gomock.Any(), "q-1").Return(true, nil)
		if err := f.uc.Delete(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newQuotationFixture(t)
		f.repo.EXPECT().Delete(gomock.Any(), "q-1").Return(false, nil)
		if err := f.uc.Delete(context.Background(), "q-1"); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})
}
