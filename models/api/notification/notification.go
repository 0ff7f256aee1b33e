package notificationapimodels

import (
	"strings"
	"time"

	"timetracker-backend/models"
)

type NotificationData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r NotificationData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return models.NewValidationError("name is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return models.NewValidationError("description is required")
	}
	return nil
}

type NotificationView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}
