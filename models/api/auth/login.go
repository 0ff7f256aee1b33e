package authapimodels

import (
	"net/mail"
	"strings"

	"timetracker-backend/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return models.NewValidationError("email has an invalid format")
	}
	if r.Password == "" {
		return models.NewValidationError("password is required")
	}
	return nil
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return models.NewValidationError("name is required")
	}
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return models.NewValidationError("email has an invalid format")
	}
	if len(r.Password) < 6 {
		return models.NewValidationError("password must be at least 6 characters")
	}
	return nil
}
