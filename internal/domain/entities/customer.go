package entities

import "time"

// Customer is a CRM contact that quotations are issued to.
//
// Storage model (DynamoDB):
//   - PK: id
type Customer struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomerPatch carries the fields of a partial customer update. Nil fields are
// left untouched.
type CustomerPatch struct {
	FullName    *string
	Email       *string
	PhoneNumber *string
	Address     *string
}

func (c Customer) Apply(p CustomerPatch) Customer {
	if p.FullName != nil {
		c.FullName = *p.FullName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = *p.PhoneNumber
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	return c
}
