package reportshandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"timetracker-backend/db"
	timeentrystore "timetracker-backend/lib/timeentry/store"
	usersstore "timetracker-backend/lib/users/store"
	"timetracker-backend/models"
	reportapimodels "timetracker-backend/models/api/report"
	dbmodels "timetracker-backend/models/db"
)

type Provider interface {
	Summary(requesterID, supervisorID, employeeID string) (reportapimodels.Summary, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      timeentrystore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      timeentrystore.Provider
	usersStore usersstore.Provider
}

// Summary scopes by the requester's persisted role: an employee always gets
// their own entries, a supervisor gets their team (optionally narrowed to one
// employee), a superadmin picks the scope explicitly.
func (i impl) Summary(requesterID, supervisorID, employeeID string) (reportapimodels.Summary, error) {
	logger := log.WithField("user_id", requesterID)
	requester, err := i.usersStore.GetByID(requesterID)
	if err != nil {
		logger.WithError(err).Error("failed to load the requester")
		return reportapimodels.Summary{}, err
	}
	if requester == nil {
		return reportapimodels.Summary{}, models.NewNotFoundError("user not found")
	}

	var recList []dbmodels.TimeEntry
	switch {
	case requester.Role.IsEmployee():
		recList, err = i.store.ListByOwner(requester.ID)
	case requester.Role.IsSupervisor():
		recList, err = i.store.ListBySupervisor(requester.ID, employeeID)
	case requester.Role.IsSuperAdmin():
		switch {
		case employeeID != "":
			recList, err = i.store.ListByOwner(employeeID)
		case supervisorID != "":
			recList, err = i.store.ListBySupervisor(supervisorID, "")
		default:
			return reportapimodels.Summary{}, models.NewValidationError("supervisorId or employeeId is required")
		}
	default:
		return reportapimodels.Summary{}, models.NewForbiddenError("insufficient permissions for reports")
	}
	if err != nil {
		logger.WithError(err).Error("failed to load entries for the report")
		return reportapimodels.Summary{}, err
	}
	return buildSummary(recList), nil
}

func buildSummary(recList []dbmodels.TimeEntry) reportapimodels.Summary {
	result := reportapimodels.Summary{
		PerProject:   map[string]int{},
		Weekly:       map[string]int{},
		Monthly:      map[string]int{},
		StatusCounts: map[string]int{},
		EntryCount:   len(recList),
	}
	for _, rec := range recList {
		minutes := rec.Minutes
		if minutes < 0 {
			minutes = 0
		}
		result.TotalMinutes += minutes

		project := rec.Project
		if project == "" {
			project = "Unknown"
		}
		result.PerProject[project] += minutes
		result.StatusCounts[string(rec.Status)]++

		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			continue
		}
		result.Weekly[weekKey(date)] += minutes
		result.Monthly[date.Format("2006-01")] += minutes
	}

	weeks := len(result.Weekly)
	if weeks < 4 {
		weeks = 4
	}
	result.AvgPerWeekMinutes = float64(result.TotalMinutes) / float64(weeks)
	return result
}

// weekKey buckets a date into a year-relative week starting from January 1st,
// with weeks aligned to Sunday.
func weekKey(date time.Time) string {
	jan1 := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	daysSinceJan1 := int(date.Sub(jan1).Hours() / 24)
	week := (daysSinceJan1 + int(jan1.Weekday()) + 1 + 6) / 7
	if week < 1 {
		week = 1
	}
	return fmt.Sprintf("%d-W%02d", date.Year(), week)
}
