package request

import (
	"shalean-booking-api/internal/domain/customer"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (customer.Credentials, error) {
	return customer.NewCredentials(r.Email, r.Password)
}
