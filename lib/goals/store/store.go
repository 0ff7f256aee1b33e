package goalsstore

import (
	"errors"

	"gorm.io/gorm"

	dbmodels "timetracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Project) (string, error)
	Update(projectID string, updMap map[string]interface{}) error
	Delete(projectID string) error
	GetByID(projectID string) (*dbmodels.Project, error)
	ListByOwner(userID string) ([]dbmodels.Project, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Project) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	return rec.ID, err
}

func (i impl) Update(projectID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Project{}).
		Where("id = ?", projectID).
		Updates(updMap).
		Error
}

func (i impl) Delete(projectID string) error {
	return i.db.
		Where("id = ?", projectID).
		Delete(&dbmodels.Project{}).
		Error
}

func (i impl) GetByID(projectID string) (rec *dbmodels.Project, err error) {
	err = i.db.
		Where("id = ?", projectID).
		First(&rec).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return rec, err
}

func (i impl) ListByOwner(userID string) (list []dbmodels.Project, err error) {
	err = i.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).
		Error
	return list, err
}
