package dbmodels

import (
	notificationapimodels "timetracker-backend/models/api/notification"
)

type Notification struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:varchar(1000)"`
	Read        bool
	UserID      string `gorm:"type:varchar(36);index"`
}

func (r Notification) ToModel() notificationapimodels.NotificationView {
	return notificationapimodels.NotificationView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Read:        r.Read,
		CreatedAt:   r.CreatedAt,
	}
}
