package sqlstore

import (
	"context"
	"errors"

	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	m := toCustomerModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	var m customerModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerModel(m), nil
}

func (r *CustomerRepository) List(ctx context.Context, offset, limit int) ([]entities.Customer, error) {
	var ms []customerModel
	q := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(ms))
	for _, m := range ms {
		out = append(out, fromCustomerModel(m))
	}
	return out, nil
}

// Update overwrites the mutable fields and returns a zero Customer when the
// row does not exist.
func (r *CustomerRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	res := r.db.WithContext(ctx).Model(&customerModel{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"full_name":    c.FullName,
		"email":        c.Email,
		"phone_number": c.PhoneNumber,
		"address":      c.Address,
		"updated_at":   c.UpdatedAt,
	})
	if res.Error != nil {
		return entities.Customer{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Customer{}, nil
	}
	return r.GetByID(ctx, c.ID)
}

func toCustomerModel(c entities.Customer) customerModel {
	return customerModel{
		ID:          c.ID,
		FullName:    c.FullName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func fromCustomerModel(m customerModel) entities.Customer {
	return entities.Customer{
		ID:          m.ID,
		FullName:    m.FullName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Address:     m.Address,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}
