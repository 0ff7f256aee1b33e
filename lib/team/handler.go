package teamhandler

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"timetracker-backend/db"
	usersstore "timetracker-backend/lib/users/store"
	"timetracker-backend/models"
	teamapimodels "timetracker-backend/models/api/team"
	dbmodels "timetracker-backend/models/db"
)

type Provider interface {
	AssignEmployee(requesterID, employeeEmail, targetSupervisorID string) error
	UnassignEmployee(requesterID, employeeID string) error
	ListTeam(supervisorID string) ([]teamapimodels.UserView, error)
	ListEmployees() ([]teamapimodels.UserView, error)
	MySupervisor(employeeID string) (teamapimodels.SupervisorView, error)
	CreateSupervisor(requesterID string, data teamapimodels.CreateSupervisorRequest) (teamapimodels.UserView, error)
	ListSupervisors() ([]teamapimodels.UserView, error)
	GetSupervisor(supervisorID string) (teamapimodels.UserView, error)
	DeleteSupervisor(requesterID, supervisorID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

// AssignEmployee resolves the effective supervisor from the requester's
// persisted role: a superadmin may target any supervisor (default: itself), a
// supervisor always adds to its own team, everyone else is denied.
func (i impl) AssignEmployee(requesterID, employeeEmail, targetSupervisorID string) error {
	logger := log.
		WithField("user_id", requesterID).
		WithField("employee_email", employeeEmail)
	requester, err := i.getUser(requesterID)
	if err != nil {
		return err
	}

	var effectiveSupervisorID string
	switch {
	case requester.Role.IsSuperAdmin():
		if targetSupervisorID != "" {
			supervisor, err := i.getUser(targetSupervisorID)
			if err != nil {
				return err
			}
			if !supervisor.Role.IsSupervisor() {
				return models.NewValidationError("specified user is not a supervisor")
			}
			effectiveSupervisorID = supervisor.ID
		} else {
			effectiveSupervisorID = requester.ID
		}
	case requester.Role.IsSupervisor():
		// any provided target is ignored
		effectiveSupervisorID = requester.ID
	default:
		return models.NewForbiddenError("insufficient permissions to manage a team")
	}

	employee, err := i.usersStore.FindByEmail(employeeEmail)
	if err != nil {
		logger.WithError(err).Error("failed to look up the employee")
		return err
	}
	if employee == nil {
		return models.NewNotFoundError("employee not found, make sure they have registered an account")
	}
	if !employee.Role.IsEmployee() {
		return models.NewValidationError("user is not an employee")
	}
	if employee.SupervisorID != nil {
		return models.NewConflictError("employee already has a supervisor")
	}

	err = i.usersStore.Update(employee.ID, map[string]interface{}{"supervisor_id": effectiveSupervisorID})
	if err != nil {
		logger.WithError(err).Error("failed to assign the employee")
		return err
	}
	logger.
		WithField("supervisor_id", effectiveSupervisorID).
		Info("employee added to the team")
	return nil
}

func (i impl) UnassignEmployee(requesterID, employeeID string) error {
	logger := log.
		WithField("user_id", requesterID).
		WithField("employee_id", employeeID)
	requester, err := i.getUser(requesterID)
	if err != nil {
		return err
	}
	if !requester.Role.CanManageTeam() {
		return models.NewForbiddenError("supervisor or superadmin role required")
	}
	employee, err := i.getUser(employeeID)
	if err != nil {
		return err
	}
	if !requester.Role.IsSuperAdmin() {
		if employee.SupervisorID == nil || *employee.SupervisorID != requester.ID {
			return models.NewForbiddenError("employee is not in your team")
		}
	}

	err = i.usersStore.Update(employee.ID, map[string]interface{}{"supervisor_id": nil})
	if err != nil {
		logger.WithError(err).Error("failed to unassign the employee")
		return err
	}
	logger.Info("employee removed from the team")
	return nil
}

func (i impl) ListTeam(supervisorID string) ([]teamapimodels.UserView, error) {
	recList, err := i.usersStore.ListBySupervisor(supervisorID)
	if err != nil {
		log.WithField("supervisor_id", supervisorID).WithError(err).Error("failed to list the team")
		return nil, err
	}
	return toViews(recList), nil
}

func (i impl) ListEmployees() ([]teamapimodels.UserView, error) {
	recList, err := i.usersStore.ListByRole(models.UserRoleEmployee)
	if err != nil {
		log.WithError(err).Error("failed to list employees")
		return nil, err
	}
	return toViews(recList), nil
}

func (i impl) MySupervisor(employeeID string) (teamapimodels.SupervisorView, error) {
	employee, err := i.getUser(employeeID)
	if err != nil {
		return teamapimodels.SupervisorView{}, err
	}
	if !employee.Role.IsEmployee() {
		return teamapimodels.SupervisorView{}, models.NewValidationError("only employees have supervisors")
	}
	if employee.SupervisorID == nil {
		return teamapimodels.SupervisorView{}, models.NewNotFoundError("no supervisor assigned")
	}
	supervisor, err := i.getUser(*employee.SupervisorID)
	if err != nil {
		return teamapimodels.SupervisorView{}, err
	}
	return teamapimodels.SupervisorView{
		ID:    supervisor.ID,
		Name:  supervisor.Name,
		Email: supervisor.Email,
	}, nil
}

func (i impl) CreateSupervisor(requesterID string, data teamapimodels.CreateSupervisorRequest) (teamapimodels.UserView, error) {
	logger := log.
		WithField("user_id", requesterID).
		WithField("email", data.Email)
	requester, err := i.getUser(requesterID)
	if err != nil {
		return teamapimodels.UserView{}, err
	}
	if !requester.Role.IsSuperAdmin() {
		return teamapimodels.UserView{}, models.NewForbiddenError("superadmin role required")
	}
	if err := data.Validate(); err != nil {
		return teamapimodels.UserView{}, err
	}
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("failed to check the email")
		return teamapimodels.UserView{}, err
	}
	if exist {
		return teamapimodels.UserView{}, models.NewConflictError("user with this email already exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.WithError(err).Error("failed to hash the password")
		return teamapimodels.UserView{}, err
	}
	rec := dbmodels.User{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: string(hash),
		Role:         models.UserRoleSupervisor,
	}
	id, err := i.usersStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create the supervisor")
		return teamapimodels.UserView{}, err
	}
	created, err := i.getUser(id)
	if err != nil {
		return teamapimodels.UserView{}, err
	}
	logger.
		WithField("rec_id", id).
		Info("supervisor account created")
	return created.ToModel(), nil
}

func (i impl) ListSupervisors() ([]teamapimodels.UserView, error) {
	recList, err := i.usersStore.ListByRole(models.UserRoleSupervisor)
	if err != nil {
		log.WithError(err).Error("failed to list supervisors")
		return nil, err
	}
	return toViews(recList), nil
}

func (i impl) GetSupervisor(supervisorID string) (teamapimodels.UserView, error) {
	supervisor, err := i.getUser(supervisorID)
	if err != nil {
		return teamapimodels.UserView{}, err
	}
	if !supervisor.Role.IsSupervisor() {
		return teamapimodels.UserView{}, models.NewValidationError("user is not a supervisor")
	}
	return supervisor.ToModel(), nil
}

// DeleteSupervisor cascades before deleting: the whole team is unassigned and
// the record removed inside one store transaction. Existing time entries keep
// their snapshotted supervisor id on purpose.
func (i impl) DeleteSupervisor(requesterID, supervisorID string) error {
	logger := log.
		WithField("user_id", requesterID).
		WithField("supervisor_id", supervisorID)
	requester, err := i.getUser(requesterID)
	if err != nil {
		return err
	}
	if !requester.Role.IsSuperAdmin() {
		return models.NewForbiddenError("superadmin role required")
	}
	supervisor, err := i.getUser(supervisorID)
	if err != nil {
		return err
	}
	if !supervisor.Role.IsSupervisor() {
		return models.NewValidationError("user is not a supervisor")
	}
	err = i.usersStore.DeleteSupervisorCascade(supervisorID)
	if err != nil {
		logger.WithError(err).Error("failed to delete the supervisor")
		return err
	}
	logger.Info("supervisor removed")
	return nil
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

func toViews(recList []dbmodels.User) []teamapimodels.UserView {
	result := make([]teamapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, rec.ToModel())
	}
	return result
}
