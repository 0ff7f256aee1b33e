package goalshandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"timetracker-backend/models"
	goalapimodels "timetracker-backend/models/api/goal"
	dbmodels "timetracker-backend/models/db"
)

type fakeGoalsStore struct {
	projects map[string]*dbmodels.Project
	updates  map[string]map[string]interface{}
}

func newFakeGoalsStore(projects ...*dbmodels.Project) *fakeGoalsStore {
	store := &fakeGoalsStore{
		projects: map[string]*dbmodels.Project{},
		updates:  map[string]map[string]interface{}{},
	}
	for _, project := range projects {
		store.projects[project.ID] = project
	}
	return store
}

func (f *fakeGoalsStore) Create(rec dbmodels.Project) (string, error) {
	if rec.ID == "" {
		rec.ID = "project-1"
	}
	saved := rec
	f.projects[rec.ID] = &saved
	return rec.ID, nil
}

func (f *fakeGoalsStore) Update(projectID string, updMap map[string]interface{}) error {
	f.updates[projectID] = updMap
	if rec, ok := f.projects[projectID]; ok {
		if tasks, ok := updMap["tasks"].(dbmodels.TaskList); ok {
			rec.Tasks = tasks
		}
		if name, ok := updMap["name"].(string); ok {
			rec.Name = name
		}
	}
	return nil
}

func (f *fakeGoalsStore) Delete(projectID string) error {
	delete(f.projects, projectID)
	return nil
}

func (f *fakeGoalsStore) GetByID(projectID string) (*dbmodels.Project, error) {
	return f.projects[projectID], nil
}

func (f *fakeGoalsStore) ListByOwner(userID string) ([]dbmodels.Project, error) {
	var list []dbmodels.Project
	for _, rec := range f.projects {
		if rec.UserID == userID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func ownedProject(id, userID string) *dbmodels.Project {
	rec := dbmodels.Project{Name: "proj " + id, UserID: userID}
	rec.ID = id
	return &rec
}

func TestGoalsOwnership(t *testing.T) {
	store := newFakeGoalsStore(ownedProject("project-1", "user-1"))
	handler := impl{store: store}

	t.Run("owner reads the project", func(t *testing.T) {
		view, err := handler.Get("user-1", "project-1")
		require.NoError(t, err)
		require.Equal(t, "project-1", view.ID)
	})

	t.Run("foreign projects look like not found", func(t *testing.T) {
		_, err := handler.Get("user-2", "project-1")
		require.Equal(t, models.ErrKindNotFound, models.KindOf(err))

		err = handler.Delete("user-2", "project-1")
		require.Equal(t, models.ErrKindNotFound, models.KindOf(err))
		require.Contains(t, store.projects, "project-1")
	})
}

func TestGoalsCreate(t *testing.T) {
	store := newFakeGoalsStore()
	handler := impl{store: store}

	t.Run("assigns task ids when missing", func(t *testing.T) {
		view, err := handler.Create("user-1", goalapimodels.ProjectData{
			Name:  "Roadmap",
			Tasks: []goalapimodels.TaskView{{Name: "Design"}},
		})
		require.NoError(t, err)
		require.Len(t, view.Tasks, 1)
		require.NotEmpty(t, view.Tasks[0].ID)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := handler.Create("user-1", goalapimodels.ProjectData{})
		require.Equal(t, models.ErrKindValidation, models.KindOf(err))
	})
}

func TestGoalsAddTask(t *testing.T) {
	store := newFakeGoalsStore(ownedProject("project-1", "user-1"))
	handler := impl{store: store}

	view, err := handler.AddTask("user-1", "project-1", goalapimodels.AddTaskRequest{
		Name:  "Review",
		Hour:  "2",
		Color: "#ff0000",
	})
	require.NoError(t, err)
	require.Len(t, view.Tasks, 1)
	require.Equal(t, "Review", view.Tasks[0].Name)
	require.NotEmpty(t, view.Tasks[0].ID)
}
