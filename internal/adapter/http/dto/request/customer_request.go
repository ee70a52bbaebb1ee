package request

import "reliant_crm/internal/domain/entities"

type CustomerCreateRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

func (r CustomerCreateRequest) ToEntity() entities.Customer {
	return entities.Customer{
		FullName:    r.FullName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
	}
}

// CustomerUpdateRequest is a partial update: omitted fields keep their value.
type CustomerUpdateRequest struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

func (r CustomerUpdateRequest) ToPatch() entities.CustomerPatch {
	return entities.CustomerPatch{
		FullName:    r.FullName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
	}
}
