package goalshandler

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"timetracker-backend/db"
	goalsstore "timetracker-backend/lib/goals/store"
	"timetracker-backend/models"
	goalapimodels "timetracker-backend/models/api/goal"
	dbmodels "timetracker-backend/models/db"
)

type Provider interface {
	Create(userID string, data goalapimodels.ProjectData) (goalapimodels.ProjectView, error)
	Update(userID, projectID string, data goalapimodels.ProjectData) (goalapimodels.ProjectView, error)
	Delete(userID, projectID string) error
	Get(userID, projectID string) (goalapimodels.ProjectView, error)
	List(userID string) ([]goalapimodels.ProjectView, error)
	AddTask(userID, projectID string, data goalapimodels.AddTaskRequest) (goalapimodels.ProjectView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: goalsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store goalsstore.Provider
}

func (i impl) Create(userID string, data goalapimodels.ProjectData) (goalapimodels.ProjectView, error) {
	logger := log.WithField("user_id", userID)
	if err := data.Validate(); err != nil {
		return goalapimodels.ProjectView{}, err
	}
	rec := dbmodels.Project{
		Name:        data.Name,
		Description: data.Description,
		Tasks:       toTaskList(data.Tasks),
		UserID:      userID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create the project")
		return goalapimodels.ProjectView{}, err
	}
	created, err := i.getOwned(userID, id)
	if err != nil {
		return goalapimodels.ProjectView{}, err
	}
	logger.WithField("rec_id", id).Info("project created")
	return created.ToModel(), nil
}

func (i impl) Update(userID, projectID string, data goalapimodels.ProjectData) (goalapimodels.ProjectView, error) {
	logger := log.
		WithField("user_id", userID).
		WithField("rec_id", projectID)
	if err := data.Validate(); err != nil {
		return goalapimodels.ProjectView{}, err
	}
	if _, err := i.getOwned(userID, projectID); err != nil {
		return goalapimodels.ProjectView{}, err
	}
	err := i.store.Update(projectID, map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
		"tasks":       toTaskList(data.Tasks),
	})
	if err != nil {
		logger.WithError(err).Error("failed to update the project")
		return goalapimodels.ProjectView{}, err
	}
	updated, err := i.getOwned(userID, projectID)
	if err != nil {
		return goalapimodels.ProjectView{}, err
	}
	return updated.ToModel(), nil
}

func (i impl) Delete(userID, projectID string) error {
	logger := log.
		WithField("user_id", userID).
		WithField("rec_id", projectID)
	if _, err := i.getOwned(userID, projectID); err != nil {
		return err
	}
	err := i.store.Delete(projectID)
	if err != nil {
		logger.WithError(err).Error("failed to delete the project")
		return err
	}
	logger.Info("project deleted")
	return nil
}

func (i impl) Get(userID, projectID string) (goalapimodels.ProjectView, error) {
	rec, err := i.getOwned(userID, projectID)
	if err != nil {
		return goalapimodels.ProjectView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) List(userID string) ([]goalapimodels.ProjectView, error) {
	recList, err := i.store.ListByOwner(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to list projects")
		return nil, err
	}
	result := make([]goalapimodels.ProjectView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) AddTask(userID, projectID string, data goalapimodels.AddTaskRequest) (goalapimodels.ProjectView, error) {
	logger := log.
		WithField("user_id", userID).
		WithField("rec_id", projectID)
	if err := data.Validate(); err != nil {
		return goalapimodels.ProjectView{}, err
	}
	rec, err := i.getOwned(userID, projectID)
	if err != nil {
		return goalapimodels.ProjectView{}, err
	}
	tasks := append(rec.Tasks, dbmodels.Task{
		ID:    uuid.NewString(),
		Name:  data.Name,
		Hour:  data.Hour,
		Color: data.Color,
	})
	err = i.store.Update(projectID, map[string]interface{}{"tasks": tasks})
	if err != nil {
		logger.WithError(err).Error("failed to add the task")
		return goalapimodels.ProjectView{}, err
	}
	updated, err := i.getOwned(userID, projectID)
	if err != nil {
		return goalapimodels.ProjectView{}, err
	}
	return updated.ToModel(), nil
}

// getOwned hides other users' projects behind a not found error.
func (i impl) getOwned(userID, projectID string) (*dbmodels.Project, error) {
	rec, err := i.store.GetByID(projectID)
	if err != nil {
		log.WithField("rec_id", projectID).WithError(err).Error("failed to load the project")
		return nil, err
	}
	if rec == nil || rec.UserID != userID {
		return nil, models.NewNotFoundError("project not found")
	}
	return rec, nil
}

func toTaskList(tasks []goalapimodels.TaskView) dbmodels.TaskList {
	result := make(dbmodels.TaskList, 0, len(tasks))
	for _, task := range tasks {
		id := task.ID
		if id == "" {
			id = uuid.NewString()
		}
		result = append(result, dbmodels.Task{
			ID:    id,
			Name:  task.Name,
			Hour:  task.Hour,
			Color: task.Color,
		})
	}
	return result
}
