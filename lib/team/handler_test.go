package teamhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"timetracker-backend/models"
	teamapimodels "timetracker-backend/models/api/team"
	dbmodels "timetracker-backend/models/db"
)

type fakeUsersStore struct {
	users    map[string]*dbmodels.User
	byEmail  map[string]*dbmodels.User
	updates  map[string]map[string]interface{}
	cascaded []string
}

func newFakeUsersStore(users ...*dbmodels.User) *fakeUsersStore {
	store := &fakeUsersStore{
		users:   map[string]*dbmodels.User{},
		byEmail: map[string]*dbmodels.User{},
		updates: map[string]map[string]interface{}{},
	}
	for _, user := range users {
		store.users[user.ID] = user
		store.byEmail[user.Email] = user
	}
	return store
}

func (f *fakeUsersStore) Create(rec dbmodels.User) (string, error) {
	if rec.ID == "" {
		rec.ID = "created-1"
	}
	saved := rec
	f.users[rec.ID] = &saved
	f.byEmail[rec.Email] = &saved
	return rec.ID, nil
}

func (f *fakeUsersStore) Update(userID string, updMap map[string]interface{}) error {
	f.updates[userID] = updMap
	return nil
}

func (f *fakeUsersStore) Delete(userID string) error {
	delete(f.users, userID)
	return nil
}

func (f *fakeUsersStore) GetByID(userID string) (*dbmodels.User, error) {
	return f.users[userID], nil
}

func (f *fakeUsersStore) FindByEmail(email string) (*dbmodels.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUsersStore) ExistByEmail(email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUsersStore) ListByRole(role models.UserRole) ([]dbmodels.User, error) {
	var list []dbmodels.User
	for _, user := range f.users {
		if user.Role == role {
			list = append(list, *user)
		}
	}
	return list, nil
}

func (f *fakeUsersStore) ListBySupervisor(supervisorID string) ([]dbmodels.User, error) {
	var list []dbmodels.User
	for _, user := range f.users {
		if user.SupervisorID != nil && *user.SupervisorID == supervisorID {
			list = append(list, *user)
		}
	}
	return list, nil
}

func (f *fakeUsersStore) DeleteSupervisorCascade(supervisorID string) error {
	f.cascaded = append(f.cascaded, supervisorID)
	for _, user := range f.users {
		if user.SupervisorID != nil && *user.SupervisorID == supervisorID {
			user.SupervisorID = nil
		}
	}
	delete(f.users, supervisorID)
	return nil
}

func strPtr(v string) *string {
	return &v
}

func newUser(id string, role models.UserRole, supervisorID *string) *dbmodels.User {
	user := dbmodels.User{
		Name:         "user " + id,
		Email:        id + "@example.com",
		Role:         role,
		SupervisorID: supervisorID,
	}
	user.ID = id
	return &user
}

func TestAssignEmployee(t *testing.T) {
	t.Run("supervisor assigns to their own team", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("sup-1", models.UserRoleSupervisor, nil),
			newUser("emp-1", models.UserRoleEmployee, nil),
		)
		handler := impl{usersStore: store}

		err := handler.AssignEmployee("sup-1", "emp-1@example.com", "")
		require.NoError(t, err)
		require.Equal(t, "sup-1", store.updates["emp-1"]["supervisor_id"])
	})

	t.Run("supervisor cannot pick another team", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("sup-1", models.UserRoleSupervisor, nil),
			newUser("sup-2", models.UserRoleSupervisor, nil),
			newUser("emp-1", models.UserRoleEmployee, nil),
		)
		handler := impl{usersStore: store}

		err := handler.AssignEmployee("sup-1", "emp-1@example.com", "sup-2")
		require.NoError(t, err)
		require.Equal(t, "sup-1", store.updates["emp-1"]["supervisor_id"])
	})

	t.Run("superadmin targets an explicit supervisor", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("admin-1", models.UserRoleSuperAdmin, nil),
			newUser("sup-2", models.UserRoleSupervisor, nil),
			newUser("emp-1", models.UserRoleEmployee, nil),
		)
		handler := impl{usersStore: store}

		err := handler.AssignEmployee("admin-1", "emp-1@example.com", "sup-2")
		require.NoError(t, err)
		require.Equal(t, "sup-2", store.updates["emp-1"]["supervisor_id"])
	})

	t.Run("already assigned employee yields a conflict", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("sup-1", models.UserRoleSupervisor, nil),
			newUser("emp-1", models.UserRoleEmployee, strPtr("sup-2")),
		)
		handler := impl{usersStore: store}

		err := handler.AssignEmployee("sup-1", "emp-1@example.com", "")
		require.Equal(t, models.ErrKindConflict, models.KindOf(err))
	})

	t.Run("unknown email yields not found", func(t *testing.T) {
		store := newFakeUsersStore(newUser("sup-1", models.UserRoleSupervisor, nil))
		handler := impl{usersStore: store}

		err := handler.AssignEmployee("sup-1", "nobody@example.com", "")
		require.Equal(t, models.ErrKindNotFound, models.KindOf(err))
	})

	t.Run("target must be an employee", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("sup-1", models.UserRoleSupervisor, nil),
			newUser("sup-2", models.UserRoleSupervisor, nil),
		)
		handler := impl{usersStore: store}

		err := handler.AssignEmployee("sup-1", "sup-2@example.com", "")
		require.Equal(t, models.ErrKindValidation, models.KindOf(err))
	})

	t.Run("employee cannot manage teams", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("emp-1", models.UserRoleEmployee, nil),
			newUser("emp-2", models.UserRoleEmployee, nil),
		)
		handler := impl{usersStore: store}

		err := handler.AssignEmployee("emp-1", "emp-2@example.com", "")
		require.Equal(t, models.ErrKindForbidden, models.KindOf(err))
	})
}

func TestUnassignEmployee(t *testing.T) {
	t.Run("own supervisor clears the assignment", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("sup-1", models.UserRoleSupervisor, nil),
			newUser("emp-1", models.UserRoleEmployee, strPtr("sup-1")),
		)
		handler := impl{usersStore: store}

		require.NoError(t, handler.UnassignEmployee("sup-1", "emp-1"))
		updMap, ok := store.updates["emp-1"]
		require.True(t, ok)
		require.Nil(t, updMap["supervisor_id"])
	})

	t.Run("foreign supervisor is denied", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("sup-1", models.UserRoleSupervisor, nil),
			newUser("emp-1", models.UserRoleEmployee, strPtr("sup-2")),
		)
		handler := impl{usersStore: store}

		err := handler.UnassignEmployee("sup-1", "emp-1")
		require.Equal(t, models.ErrKindForbidden, models.KindOf(err))
	})

	t.Run("superadmin may unassign anyone", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("admin-1", models.UserRoleSuperAdmin, nil),
			newUser("emp-1", models.UserRoleEmployee, strPtr("sup-2")),
		)
		handler := impl{usersStore: store}

		require.NoError(t, handler.UnassignEmployee("admin-1", "emp-1"))
	})
}

func TestMySupervisor(t *testing.T) {
	t.Run("returns the assigned supervisor", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("sup-1", models.UserRoleSupervisor, nil),
			newUser("emp-1", models.UserRoleEmployee, strPtr("sup-1")),
		)
		handler := impl{usersStore: store}

		view, err := handler.MySupervisor("emp-1")
		require.NoError(t, err)
		require.Equal(t, "sup-1", view.ID)
	})

	t.Run("unassigned employee gets not found", func(t *testing.T) {
		store := newFakeUsersStore(newUser("emp-1", models.UserRoleEmployee, nil))
		handler := impl{usersStore: store}

		_, err := handler.MySupervisor("emp-1")
		require.Equal(t, models.ErrKindNotFound, models.KindOf(err))
	})
}

func TestCreateSupervisor(t *testing.T) {
	t.Run("superadmin creates a supervisor account", func(t *testing.T) {
		store := newFakeUsersStore(newUser("admin-1", models.UserRoleSuperAdmin, nil))
		handler := impl{usersStore: store}

		view, err := handler.CreateSupervisor("admin-1", teamapimodels.CreateSupervisorRequest{
			Name:     "New Supervisor",
			Email:    "new-sup@example.com",
			Password: "secret-pass",
		})
		require.NoError(t, err)
		require.Equal(t, models.UserRoleSupervisor, view.Role)
		created := store.byEmail["new-sup@example.com"]
		require.NotNil(t, created)
		require.NotEqual(t, "secret-pass", created.PasswordHash)
	})

	t.Run("duplicate email yields a conflict", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("admin-1", models.UserRoleSuperAdmin, nil),
			newUser("sup-1", models.UserRoleSupervisor, nil),
		)
		handler := impl{usersStore: store}

		_, err := handler.CreateSupervisor("admin-1", teamapimodels.CreateSupervisorRequest{
			Name:     "Dup",
			Email:    "sup-1@example.com",
			Password: "secret-pass",
		})
		require.Equal(t, models.ErrKindConflict, models.KindOf(err))
	})

	t.Run("supervisor is denied", func(t *testing.T) {
		store := newFakeUsersStore(newUser("sup-1", models.UserRoleSupervisor, nil))
		handler := impl{usersStore: store}

		_, err := handler.CreateSupervisor("sup-1", teamapimodels.CreateSupervisorRequest{
			Name:     "New",
			Email:    "new@example.com",
			Password: "secret-pass",
		})
		require.Equal(t, models.ErrKindForbidden, models.KindOf(err))
	})
}

func TestDeleteSupervisor(t *testing.T) {
	t.Run("cascade unassigns the team", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("admin-1", models.UserRoleSuperAdmin, nil),
			newUser("sup-1", models.UserRoleSupervisor, nil),
			newUser("emp-1", models.UserRoleEmployee, strPtr("sup-1")),
		)
		handler := impl{usersStore: store}

		require.NoError(t, handler.DeleteSupervisor("admin-1", "sup-1"))
		require.Equal(t, []string{"sup-1"}, store.cascaded)
		require.Nil(t, store.users["emp-1"].SupervisorID)
	})

	t.Run("only a superadmin may delete", func(t *testing.T) {
		store := newFakeUsersStore(
			newUser("sup-1", models.UserRoleSupervisor, nil),
			newUser("sup-2", models.UserRoleSupervisor, nil),
		)
		handler := impl{usersStore: store}

		err := handler.DeleteSupervisor("sup-1", "sup-2")
		require.Equal(t, models.ErrKindForbidden, models.KindOf(err))
	})
}
