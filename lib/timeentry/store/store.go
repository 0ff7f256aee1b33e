package timeentrystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"timetracker-backend/models"
	dbmodels "timetracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TimeEntry) (id string, err error)
	GetByID(id string) (rec *dbmodels.TimeEntry, err error)
	ListByOwner(ownerID string) (list []dbmodels.TimeEntry, err error)
	ListBySupervisor(supervisorID, employeeID string) (list []dbmodels.TimeEntry, err error)
	ListPendingBySupervisor(supervisorID string) (list []dbmodels.TimeEntry, err error)
	TransitionIfPending(id string, updMap map[string]interface{}) (won bool, err error)
	ReassignPending(fromSupervisorID, toSupervisorID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TimeEntry) (id string, err error) {
	err = i.db.
		Omit("User").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.TimeEntry, error) {
	rec := dbmodels.TimeEntry{}
	err := i.db.
		Where("id = ?", id).
		Preload("User").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByOwner(ownerID string) (list []dbmodels.TimeEntry, err error) {
	list = []dbmodels.TimeEntry{}
	err = i.db.
		Where("user_id = ?", ownerID).
		Order("date DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListBySupervisor(supervisorID, employeeID string) (list []dbmodels.TimeEntry, err error) {
	list = []dbmodels.TimeEntry{}
	tx := i.db.
		Where("supervisor_id = ?", supervisorID)
	if employeeID != "" {
		tx = tx.Where("user_id = ?", employeeID)
	}
	err = tx.
		Order("date DESC").
		Preload("User").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPendingBySupervisor(supervisorID string) (list []dbmodels.TimeEntry, err error) {
	list = []dbmodels.TimeEntry{}
	err = i.db.
		Where("supervisor_id = ?", supervisorID).
		Where("status = ?", models.EntryStatusPending).
		Order("date DESC").
		Preload("User").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// TransitionIfPending applies the patch only while the entry is still pending.
// The status guard lives in the UPDATE itself, so two racing approvals cannot
// both win; the loser sees won=false.
func (i impl) TransitionIfPending(id string, updMap map[string]interface{}) (bool, error) {
	tx := i.db.
		Model(&dbmodels.TimeEntry{}).
		Where("id = ?", id).
		Where("status = ?", models.EntryStatusPending).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) ReassignPending(fromSupervisorID, toSupervisorID string) (int64, error) {
	tx := i.db.
		Model(&dbmodels.TimeEntry{}).
		Where("supervisor_id = ?", fromSupervisorID).
		Where("status = ?", models.EntryStatusPending).
		Update("supervisor_id", toSupervisorID)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
