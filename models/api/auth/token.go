package authapimodels

import "timetracker-backend/models"

type JWTResponse struct {
	Token        string          `json:"token"`
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         models.UserRole `json:"role"`
	IsFirstLogin bool            `json:"isFirstLogin"`
}
