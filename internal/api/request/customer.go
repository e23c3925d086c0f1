package request

type CreateCustomer struct {
	Name        string  `json:"name" validate:"required"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}

// UpdateCustomer is a merge patch: nil means "leave unchanged".
type UpdateCustomer struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}
