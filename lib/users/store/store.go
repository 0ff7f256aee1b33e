package usersstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"timetracker-backend/models"
	dbmodels "timetracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (string, error)
	Update(userID string, updMap map[string]interface{}) error
	Delete(userID string) error
	GetByID(userID string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	ExistByEmail(email string) (bool, error)
	ListByRole(role models.UserRole) (list []dbmodels.User, err error)
	ListBySupervisor(supervisorID string) (list []dbmodels.User, err error)
	DeleteSupervisorCascade(supervisorID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (string, error) {
	rec.Email = normalizeEmail(rec.Email)
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(userID string) error {
	return i.db.
		Where("id = ?", userID).
		Delete(&dbmodels.User{}).
		Error
}

func (i impl) GetByID(userID string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) FindByEmail(email string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("email = ?", normalizeEmail(email)).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ExistByEmail(email string) (bool, error) {
	err := i.db.
		Where("email = ?", normalizeEmail(email)).
		First(&dbmodels.User{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) ListByRole(role models.UserRole) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	err = i.db.
		Where("role = ?", role).
		Order("name ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListBySupervisor(supervisorID string) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	err = i.db.
		Where("supervisor_id = ?", supervisorID).
		Order("name ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteSupervisorCascade unassigns the whole team and deletes the supervisor
// record in one transaction, so no employee is left pointing at a deleted id.
// Re-running it is safe: the bulk update is a no-op once the team is empty.
func (i impl) DeleteSupervisorCascade(supervisorID string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.User{}).
			Where("supervisor_id = ?", supervisorID).
			Update("supervisor_id", nil).
			Error
		if err != nil {
			return err
		}
		return tx.
			Where("id = ?", supervisorID).
			Delete(&dbmodels.User{}).
			Error
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
