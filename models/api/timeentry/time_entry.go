package timeapimodels

import (
	"strings"
	"time"

	"timetracker-backend/models"
)

type TaskView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Hour  string `json:"hour"`
	Color string `json:"color"`
}

type TimeEntryData struct {
	Date    string     `json:"date"` // YYYY-MM-DD
	Minutes int        `json:"minutes"`
	Tasks   []TaskView `json:"tasks"`
	Project string     `json:"project"`
}

func (r TimeEntryData) Validate() error {
	if strings.TrimSpace(r.Date) == "" {
		return models.NewValidationError("date is required")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return models.NewValidationError("date must be a calendar day in YYYY-MM-DD format")
	}
	if r.Minutes <= 0 {
		return models.NewValidationError("minutes must be a positive number")
	}
	return nil
}

type TimeEntryView struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	UserName        string             `json:"user_name,omitempty"`
	UserEmail       string             `json:"user_email,omitempty"`
	Date            string             `json:"date"`
	Minutes         int                `json:"minutes"`
	Tasks           []TaskView         `json:"tasks"`
	Project         string             `json:"project"`
	Status          models.EntryStatus `json:"status"`
	StatusName      string             `json:"status_name"`
	SupervisorID    string             `json:"supervisor_id,omitempty"`
	ApprovedAt      *time.Time         `json:"approved_at,omitempty"`
	ApprovedBy      string             `json:"approved_by,omitempty"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type ReassignPendingRequest struct {
	FromSupervisorID string `json:"from_supervisor_id"`
	ToSupervisorID   string `json:"to_supervisor_id"`
}

func (r ReassignPendingRequest) Validate() error {
	if r.FromSupervisorID == "" {
		return models.NewValidationError("from_supervisor_id is required")
	}
	if r.ToSupervisorID == "" {
		return models.NewValidationError("to_supervisor_id is required")
	}
	if r.FromSupervisorID == r.ToSupervisorID {
		return models.NewValidationError("source and target supervisor must differ")
	}
	return nil
}
