package notificationsstore

import (
	"gorm.io/gorm"

	dbmodels "timetracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (string, error)
	ListByOwner(userID string) ([]dbmodels.Notification, error)
	MarkAllRead(userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	return rec.ID, err
}

func (i impl) ListByOwner(userID string) (list []dbmodels.Notification, err error) {
	err = i.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).
		Error
	return list, err
}

func (i impl) MarkAllRead(userID string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("read = ?", false).
		Update("read", true).
		Error
}
