package usecase

import (
	"context"
	"errors"
	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/infrastructure/logger"
	"reliant_crm/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidCustomerInput = errors.New("invalid customer input")
	ErrInvalidPagination    = errors.New("invalid pagination")
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 100
)

// ICustomerUseCase exposes customer management operations.
type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, offset, limit int) ([]entities.Customer, error)
	Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
	log  *logger.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, log: logger.OrNop(log).Component("customer.usecase")}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.FullName = strings.TrimSpace(c.FullName)
	if c.FullName == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}
	c.Email = strings.TrimSpace(c.Email)

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.log.Error("customer create failed", "error", err)
		return entities.Customer{}, err
	}
	u.log.Info("customer created", "customer_id", created.ID)
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context, offset, limit int) ([]entities.Customer, error) {
	if offset < 0 || limit < 0 {
		return nil, ErrInvalidPagination
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return u.repo.List(ctx, offset, limit)
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	updated := current.Apply(patch)
	updated.FullName = strings.TrimSpace(updated.FullName)
	if updated.FullName == "" {
		return entities.Customer{}, ErrInvalidCustomerInput
	}
	updated.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Update(ctx, updated)
	if err != nil {
		u.log.Error("customer update failed", "customer_id", current.ID, "error", err)
		return entities.Customer{}, err
	}
	if saved.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return saved, nil
}
