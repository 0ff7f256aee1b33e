package teamapimodels

import (
	"net/mail"
	"strings"

	"timetracker-backend/models"
)

type UserView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         models.UserRole `json:"role"`
	RoleName     string          `json:"role_name"`
	SupervisorID string          `json:"supervisor_id,omitempty"`
}

type SupervisorView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AddMemberRequest struct {
	EmployeeEmail string `json:"employeeEmail"`
	// SupervisorID is only honoured for superadmin callers; supervisors always
	// add to their own team.
	SupervisorID string `json:"supervisorId"`
}

func (r AddMemberRequest) Validate() error {
	if strings.TrimSpace(r.EmployeeEmail) == "" {
		return models.NewValidationError("employee email is required")
	}
	if _, err := mail.ParseAddress(r.EmployeeEmail); err != nil {
		return models.NewValidationError("employee email has an invalid format")
	}
	return nil
}

type CreateSupervisorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r CreateSupervisorRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return models.NewValidationError("name is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return models.NewValidationError("email has an invalid format")
	}
	if len(r.Password) < 6 {
		return models.NewValidationError("password must be at least 6 characters")
	}
	return nil
}
