package dbmodels

import (
	"time"

	"timetracker-backend/models"
	teamapimodels "timetracker-backend/models/api/team"
)

type User struct {
	BaseModel
	Name          string          `gorm:"type:varchar(150)"`
	Email         string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash  string          `gorm:"type:varchar(128)"`
	Role          models.UserRole `gorm:"type:varchar(50)"`
	SupervisorID  *string         `gorm:"type:varchar(36);index"`
	Supervisor    *User           `gorm:"foreignKey:SupervisorID"`
	LastLoginDate *time.Time
}

func (r User) ToModel() teamapimodels.UserView {
	view := teamapimodels.UserView{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
		RoleName: r.Role.ToHuman(),
	}
	if r.SupervisorID != nil {
		view.SupervisorID = *r.SupervisorID
	}
	return view
}
