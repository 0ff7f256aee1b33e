package dbmodels

import (
	"time"

	"timetracker-backend/models"
	timeapimodels "timetracker-backend/models/api/timeentry"
)

type TimeEntry struct {
	BaseModel
	UserID string `gorm:"type:varchar(36);index"`
	User   *User  `gorm:"foreignKey:UserID"`
	// Date is a calendar day (YYYY-MM-DD), deliberately not a timestamp.
	Date    string   `gorm:"type:varchar(10);index"`
	Minutes int
	Tasks   TaskList `gorm:"type:jsonb"`
	Project string   `gorm:"type:varchar(255)"`
	Status  models.EntryStatus `gorm:"type:varchar(20);index"`
	// SupervisorID is snapshotted from the owner at creation time and is never
	// recomputed. Reassigning the employee does not touch existing entries.
	SupervisorID    *string `gorm:"type:varchar(36);index"`
	ApprovedAt      *time.Time
	ApprovedBy      *string `gorm:"type:varchar(36)"`
	RejectionReason string  `gorm:"type:varchar(500)"`
}

func (r TimeEntry) ToModel() timeapimodels.TimeEntryView {
	view := timeapimodels.TimeEntryView{
		ID:              r.ID,
		UserID:          r.UserID,
		Date:            r.Date,
		Minutes:         r.Minutes,
		Project:         r.Project,
		Status:          r.Status,
		StatusName:      r.Status.ToHuman(),
		ApprovedAt:      r.ApprovedAt,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
	}
	if r.SupervisorID != nil {
		view.SupervisorID = *r.SupervisorID
	}
	if r.ApprovedBy != nil {
		view.ApprovedBy = *r.ApprovedBy
	}
	if r.User != nil {
		view.UserName = r.User.Name
		view.UserEmail = r.User.Email
	}
	view.Tasks = make([]timeapimodels.TaskView, 0, len(r.Tasks))
	for _, task := range r.Tasks {
		view.Tasks = append(view.Tasks, timeapimodels.TaskView{
			ID:    task.ID,
			Name:  task.Name,
			Hour:  task.Hour,
			Color: task.Color,
		})
	}
	return view
}
