package usecase

import (
	"context"
	"errors"
	"testing"

	"reliant_crm/internal/domain/entities"
	mock_interfaces "reliant_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" || c.CreatedAt.IsZero() || c.FullName != "Ada Lovelace" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.Customer{FullName: "  Ada Lovelace "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("name required", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		if _, err := uc.Create(context.Background(), entities.Customer{FullName: " "}); !errors.Is(err, ErrInvalidCustomerInput) {
			t.Fatalf("expected ErrInvalidCustomerInput, got %v", err)
		}
	})
}

func TestCustomerUseCase_List(t *testing.T) {
	cases := []struct {
		name      string
		offset    int
		limit     int
		wantLimit int
	}{
		{"default limit", 0, 0, DefaultListLimit},
		{"explicit", 10, 5, 5},
		{"capped", 0, 500, MaxListLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockICustomerRepository(ctrl)
			uc := NewCustomerUseCase(repo, nil)
			repo.EXPECT().List(gomock.Any(), tc.offset, tc.wantLimit).Return(nil, nil)

			if _, err := uc.List(context.Background(), tc.offset, tc.limit); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	t.Run("negative offset", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		if _, err := uc.List(context.Background(), -1, 10); !errors.Is(err, ErrInvalidPagination) {
			t.Fatalf("expected ErrInvalidPagination, got %v", err)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	t.Run("applies patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		phone := "555-0100"
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", FullName: "Ada"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.FullName != "Ada" || c.PhoneNumber != phone {
					t.Fatalf("unexpected update: %+v", c)
				}
				return c, nil
			},
		)

		got, err := uc.Update(context.Background(), "c-1", entities.CustomerPatch{PhoneNumber: &phone})
		if err != nil || got.PhoneNumber != phone {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		if _, err := uc.Update(context.Background(), "c-1", entities.CustomerPatch{}); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)
		blank := "  "
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", FullName: "Ada"}, nil)

		if _, err := uc.Update(context.Background(), "c-1", entities.CustomerPatch{FullName: &blank}); !errors.Is(err, ErrInvalidCustomerInput) {
			t.Fatalf("expected ErrInvalidCustomerInput, got %v", err)
		}
	})
}

func TestCatalogUseCase(t *testing.T) {
	t.Run("create validates", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		bad := windowItem("", "0")
		if _, err := uc.Create(context.Background(), bad); !errors.Is(err, ErrInvalidCatalogItemInput) {
			t.Fatalf("expected ErrInvalidCatalogItemInput, got %v", err)
		}
		bad = windowItem("", "10")
		bad.Material = "Steel"
		if _, err := uc.Create(context.Background(), bad); !errors.Is(err, ErrInvalidCatalogItemInput) {
			t.Fatalf("expected ErrInvalidCatalogItemInput, got %v", err)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogItemRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.CatalogItem) (entities.CatalogItem, error) { return it, nil },
		)

		got, err := uc.Create(context.Background(), windowItem("", "99.90"))
		if err != nil || got.ID == "" {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogItemRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.CatalogItem{}, nil)

		if _, err := uc.GetByID(context.Background(), "x"); !errors.Is(err, ErrCatalogItemNotFound) {
			t.Fatalf("expected ErrCatalogItemNotFound, got %v", err)
		}
	})
}
