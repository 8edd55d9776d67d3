package dto

import "solemate/internal/domain/models"

// SignupInput carries the registration payload. Phone and address are
// optional; only name, email and password gate the request.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (input SignupInput) ToDomain(passwordHash []byte) models.User {
	return models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: passwordHash,
		Phone:    input.Phone,
		Address:  input.Address,
	}
}
