package timeentryhandler

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"timetracker-backend/db"
	timeentrystore "timetracker-backend/lib/timeentry/store"
	usersstore "timetracker-backend/lib/users/store"
	"timetracker-backend/models"
	timeapimodels "timetracker-backend/models/api/timeentry"
	dbmodels "timetracker-backend/models/db"
)

type Provider interface {
	Submit(ownerID string, data timeapimodels.TimeEntryData) (timeapimodels.TimeEntryView, error)
	ListMy(ownerID string) ([]timeapimodels.TimeEntryView, error)
	ListTeam(requesterID, supervisorID, employeeID string) ([]timeapimodels.TimeEntryView, error)
	ListPending(requesterID, supervisorID string) ([]timeapimodels.TimeEntryView, error)
	Approve(requesterID, entryID string) error
	Reject(requesterID, entryID, reason string) error
	ReassignOrphanedPending(requesterID, fromSupervisorID, toSupervisorID string) (int64, error)
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

func (i impl) Submit(ownerID string, data timeapimodels.TimeEntryData) (timeapimodels.TimeEntryView, error) {
	logger := log.WithField("user_id", ownerID)
	if err := data.Validate(); err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	owner, err := i.usersStore.GetByID(ownerID)
	if err != nil {
		logger.WithError(err).Error("failed to load the entry owner")
		return timeapimodels.TimeEntryView{}, err
	}
	if owner == nil {
		return timeapimodels.TimeEntryView{}, models.NewNotFoundError("user not found")
	}
	if !owner.Role.CanSubmitEntries() {
		return timeapimodels.TimeEntryView{}, models.NewForbiddenError("role %v cannot submit time entries", owner.Role)
	}

	projectName := data.Project
	if projectName == "" {
		projectName = models.DefaultProjectName
	}
	tasks := make(dbmodels.TaskList, 0, len(data.Tasks))
	for _, task := range data.Tasks {
		id := task.ID
		if id == "" {
			id = uuid.NewString()
		}
		tasks = append(tasks, dbmodels.Task{
			ID:    id,
			Name:  task.Name,
			Hour:  task.Hour,
			Color: task.Color,
		})
	}

	rec := dbmodels.TimeEntry{
		UserID:  ownerID,
		Date:    data.Date,
		Minutes: data.Minutes,
		Tasks:   tasks,
		Project: projectName,
		// status is forced regardless of input
		Status: models.EntryStatusPending,
		// approver pool is fixed to whoever supervises the owner right now
		SupervisorID: owner.SupervisorID,
	}
	if owner.SupervisorID == nil {
		logger.Warn("employee has no supervisor assigned, entry will stay unrouted")
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create the time entry")
		return timeapimodels.TimeEntryView{}, err
	}
	created, err := i.store.GetByID(id)
	if err != nil {
		return timeapimodels.TimeEntryView{}, err
	}
	logger.
		WithField("rec_id", id).
		Info("time entry submitted")
	return created.ToModel(), nil
}

func (i impl) ListMy(ownerID string) ([]timeapimodels.TimeEntryView, error) {
	recList, err := i.store.ListByOwner(ownerID)
	if err != nil {
		log.WithField("user_id", ownerID).WithError(err).Error("failed to list own entries")
		return nil, err
	}
	return toViews(recList), nil
}

// ListTeam narrows the scope by the requester's persisted role: supervisors
// always see their own team, the superadmin picks a team by explicit id.
func (i impl) ListTeam(requesterID, supervisorID, employeeID string) ([]timeapimodels.TimeEntryView, error) {
	effectiveSupervisorID, err := i.resolveSupervisorScope(requesterID, supervisorID)
	if err != nil {
		return nil, err
	}
	recList, err := i.store.ListBySupervisor(effectiveSupervisorID, employeeID)
	if err != nil {
		log.WithField("supervisor_id", effectiveSupervisorID).WithError(err).Error("failed to list team entries")
		return nil, err
	}
	return toViews(recList), nil
}

func (i impl) ListPending(requesterID, supervisorID string) ([]timeapimodels.TimeEntryView, error) {
	effectiveSupervisorID, err := i.resolveSupervisorScope(requesterID, supervisorID)
	if err != nil {
		return nil, err
	}
	recList, err := i.store.ListPendingBySupervisor(effectiveSupervisorID)
	if err != nil {
		log.WithField("supervisor_id", effectiveSupervisorID).WithError(err).Error("failed to list pending entries")
		return nil, err
	}
	return toViews(recList), nil
}

func (i impl) Approve(requesterID, entryID string) error {
	logger := log.
		WithField("rec_id", entryID).
		WithField("user_id", requesterID)
	entry, err := i.authorizeTransition(requesterID, entryID)
	if err != nil {
		return err
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":      models.EntryStatusApproved,
		"approved_at": now,
		"approved_by": requesterID,
	}
	won, err := i.store.TransitionIfPending(entry.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("failed to approve the entry")
		return err
	}
	if !won {
		return models.NewConflictError("entry is no longer pending")
	}
	logger.Info("time entry approved")
	return nil
}

func (i impl) Reject(requesterID, entryID, reason string) error {
	logger := log.
		WithField("rec_id", entryID).
		WithField("user_id", requesterID)
	entry, err := i.authorizeTransition(requesterID, entryID)
	if err != nil {
		return err
	}
	if reason == "" {
		reason = models.DefaultRejectionReason
	}
	updMap := map[string]interface{}{
		"status":           models.EntryStatusRejected,
		"rejection_reason": reason,
		// approved_by doubles as "last actor" regardless of outcome
		"approved_by": requesterID,
	}
	won, err := i.store.TransitionIfPending(entry.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("failed to reject the entry")
		return err
	}
	if !won {
		return models.NewConflictError("entry is no longer pending")
	}
	logger.Info("time entry rejected")
	return nil
}

// ReassignOrphanedPending moves pending entries snapshotted to one supervisor
// onto another. Administrative escape hatch for teams whose supervisor left
// while approvals were still open.
func (i impl) ReassignOrphanedPending(requesterID, fromSupervisorID, toSupervisorID string) (int64, error) {
	logger := log.
		WithField("user_id", requesterID).
		WithField("from", fromSupervisorID).
		WithField("to", toSupervisorID)
	requester, err := i.getUser(requesterID)
	if err != nil {
		return 0, err
	}
	if !requester.Role.IsSuperAdmin() {
		return 0, models.NewForbiddenError("superadmin role required")
	}
	target, err := i.getUser(toSupervisorID)
	if err != nil {
		return 0, err
	}
	if !target.Role.IsSupervisor() {
		return 0, models.NewValidationError("target user is not a supervisor")
	}
	count, err := i.store.ReassignPending(fromSupervisorID, toSupervisorID)
	if err != nil {
		logger.WithError(err).Error("failed to reassign pending entries")
		return 0, err
	}
	logger.
		WithField("count", count).
		Info("pending entries reassigned")
	return count, nil
}

// authorizeTransition re-reads the requester record (the token role is only a
// hint) and verifies the snapshotted ownership edge before any transition.
func (i impl) authorizeTransition(requesterID, entryID string) (*dbmodels.TimeEntry, error) {
	requester, err := i.getUser(requesterID)
	if err != nil {
		return nil, err
	}
	if !requester.Role.CanApproveEntries() {
		return nil, models.NewForbiddenError("supervisor role required")
	}
	entry, err := i.store.GetByID(entryID)
	if err != nil {
		log.WithField("rec_id", entryID).WithError(err).Error("failed to load the entry")
		return nil, err
	}
	if entry == nil {
		return nil, models.NewNotFoundError("time entry not found")
	}
	if entry.SupervisorID == nil || *entry.SupervisorID != requesterID {
		return nil, models.NewForbiddenError("entry belongs to another team")
	}
	if entry.Status.IsTerminal() {
		return nil, models.NewConflictError("entry is already %v", entry.Status)
	}
	return entry, nil
}

func (i impl) resolveSupervisorScope(requesterID, supervisorID string) (string, error) {
	requester, err := i.getUser(requesterID)
	if err != nil {
		return "", err
	}
	switch {
	case requester.Role.IsSupervisor():
		// a provided supervisorId is ignored: supervisors see their own team only
		return requester.ID, nil
	case requester.Role.IsSuperAdmin():
		if supervisorID == "" {
			return "", models.NewValidationError("supervisorId is required")
		}
		supervisor, err := i.getUser(supervisorID)
		if err != nil {
			return "", err
		}
		if !supervisor.Role.IsSupervisor() {
			return "", models.NewValidationError("user is not a supervisor")
		}
		return supervisor.ID, nil
	default:
		return "", models.NewForbiddenError("supervisor or superadmin role required")
	}
}

func (i impl) getUser(userID string) (*dbmodels.User, error) {
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to load the user")
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("user not found")
	}
	return rec, nil
}

func toViews(recList []dbmodels.TimeEntry) []timeapimodels.TimeEntryView {
	result := make([]timeapimodels.TimeEntryView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, rec.ToModel())
	}
	return result
}
