package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/domain/pricing"
	"reliant_crm/internal/infrastructure/logger"
	"reliant_crm/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound       = errors.New("quotation not found")
	ErrInvalidQuotationID      = errors.New("invalid quotation id")
	ErrInvalidQuotationInput   = errors.New("invalid quotation input")
	ErrInvalidStatusTransition = errors.New("invalid quotation status transition")
)

// CreateQuotationCommand is the input of CreateQuotation.
type CreateQuotationCommand struct {
	CustomerID string
	UserID     string
	Items      []entities.LineRequest
}

// IQuotationUseCase encapsulates quotation creation and lifecycle.
//
// Creation resolves every catalog item, prices each line with the pricing
// engine and persists the quotation with its lines in one write. Totals are
// exact and never come from the estimation model.
type IQuotationUseCase interface {
	CreateQuotation(ctx context.Context, cmd CreateQuotationCommand) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Quotation, error)
	Accept(ctx context.Context, id string) (entities.Quotation, error)
	Reject(ctx context.Context, id string) (entities.Quotation, error)
	Cancel(ctx context.Context, id string) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}

type QuotationUseCase struct {
	repo      interfaces.IQuotationRepository
	customers interfaces.ICustomerRepository
	catalog   interfaces.ICatalogItemRepository
	log       *logger.Logger
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository, customers interfaces.ICustomerRepository, catalog interfaces.ICatalogItemRepository, log *logger.Logger) *QuotationUseCase {
	return &QuotationUseCase{
		repo:      repo,
		customers: customers,
		catalog:   catalog,
		log:       logger.OrNop(log).Component("quotation.usecase"),
	}
}

func (u *QuotationUseCase) CreateQuotation(ctx context.Context, cmd CreateQuotationCommand) (entities.Quotation, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	if cmd.CustomerID == "" {
		return entities.Quotation{}, ErrInvalidCustomerID
	}
	if len(cmd.Items) == 0 {
		return entities.Quotation{}, fmt.Errorf("%w: at least one item is required", ErrInvalidQuotationInput)
	}
	for i, it := range cmd.Items {
		if err := validateLine(it); err != nil {
			return entities.Quotation{}, fmt.Errorf("%w: item %d: %v", ErrInvalidQuotationInput, i, err)
		}
	}

	customer, err := u.customers.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if customer.ID == "" {
		return entities.Quotation{}, ErrCustomerNotFound
	}

	resolved := make(map[string]entities.CatalogItem, len(cmd.Items))
	lines := make([]entities.PricedLine, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		itemID := strings.TrimSpace(it.CatalogItemID)
		item, ok := resolved[itemID]
		if !ok {
			item, err = u.catalog.GetByID(ctx, itemID)
			if err != nil {
				return entities.Quotation{}, err
			}
			if item.ID == "" {
				return entities.Quotation{}, fmt.Errorf("%w: %s", ErrCatalogItemNotFound, itemID)
			}
			resolved[itemID] = item
		}
		lines = append(lines, entities.PricedLine{
			CatalogItemID: item.ID,
			Width:         it.Width,
			Height:        it.Height,
			Quantity:      it.Quantity,
			Price:         pricing.PriceLine(item.BasePrice, it.Width, it.Height, it.Quantity),
		})
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		UserID:     strings.TrimSpace(cmd.UserID),
		TotalPrice: pricing.PriceQuotation(lines),
		Status:     entities.QuotationStatusDraft,
		Lines:      lines,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.log.Error("quotation create failed", "customer_id", customer.ID, "error", err)
		return entities.Quotation{}, err
	}
	u.log.Info("quotation created", "quotation_id", created.ID, "customer_id", created.CustomerID, "lines", len(created.Lines), "total_price", created.TotalPrice.String())
	return created, nil
}

func validateLine(it entities.LineRequest) error {
	if strings.TrimSpace(it.CatalogItemID) == "" {
		return errors.New("catalog_item_id is required")
	}
	if !positive(it.Width) || !positive(it.Height) {
		return errors.New("width and height must be positive")
	}
	if it.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Quotation, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.ID == "" {
		return nil, ErrCustomerNotFound
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *QuotationUseCase) Accept(ctx context.Context, id string) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusAccepted)
}

func (u *QuotationUseCase) Reject(ctx context.Context, id string) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusRejected)
}

func (u *QuotationUseCase) Cancel(ctx context.Context, id string) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusCancelled)
}

func (u *QuotationUseCase) transition(ctx context.Context, id string, next entities.QuotationStatus) (entities.Quotation, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !current.Status.CanTransitionTo(next) {
		return entities.Quotation{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, next)
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, next)
	if err != nil {
		u.log.Error("quotation status update failed", "quotation_id", current.ID, "next", next, "error", err)
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		// Lost a race with another transition.
		return entities.Quotation{}, fmt.Errorf("%w: %s is no longer %s", ErrInvalidStatusTransition, current.ID, current.Status)
	}
	u.log.Info("quotation status changed", "quotation_id", updated.ID, "from", current.Status, "to", updated.Status)
	return updated, nil
}

func (u *QuotationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuotationID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		u.log.Error("quotation delete failed", "quotation_id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrQuotationNotFound
	}
	u.log.Info("quotation deleted", "quotation_id", id)
	return nil
}
