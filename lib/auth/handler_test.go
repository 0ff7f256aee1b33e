package authhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"timetracker-backend/config"
	"timetracker-backend/models"
	authapimodels "timetracker-backend/models/api/auth"
	dbmodels "timetracker-backend/models/db"
)

type fakeUsersStore struct {
	users   map[string]*dbmodels.User
	byEmail map[string]*dbmodels.User
	updates map[string]map[string]interface{}
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

func (f *fakeUsersStore) Delete(string) error { return nil }

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

func (f *fakeUsersStore) ListByRole(models.UserRole) ([]dbmodels.User, error) { return nil, nil }
func (f *fakeUsersStore) ListBySupervisor(string) ([]dbmodels.User, error) { return nil, nil }
func (f *fakeUsersStore) DeleteSupervisorCascade(string) error                 { return nil }

func initTestConfig() {
	if config.Conf != nil {
		return
	}
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	config.Conf = conf
}

func TestRegister(t *testing.T) {
	initTestConfig()

	t.Run("creates an employee account", func(t *testing.T) {
		store := newFakeUsersStore()
		handler := impl{usersStore: store}

		resp, err := handler.Register(authapimodels.RegisterRequest{
			Name:     "New Employee",
			Email:    "new@example.com",
			Password: "secret-pass",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, models.UserRoleEmployee, resp.Role)
		require.True(t, resp.IsFirstLogin)

		created := store.byEmail["new@example.com"]
		require.NotNil(t, created)
		require.Equal(t, models.UserRoleEmployee, created.Role)
		require.NotEqual(t, "secret-pass", created.PasswordHash)
	})

	t.Run("duplicate email yields a conflict", func(t *testing.T) {
		existing := dbmodels.User{Email: "taken@example.com", Role: models.UserRoleEmployee}
		existing.ID = "user-1"
		store := newFakeUsersStore(&existing)
		handler := impl{usersStore: store}

		_, err := handler.Register(authapimodels.RegisterRequest{
			Name:     "Dup",
			Email:    "taken@example.com",
			Password: "secret-pass",
		})
		require.Equal(t, models.ErrKindConflict, models.KindOf(err))
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		handler := impl{usersStore: newFakeUsersStore()}

		_, err := handler.Register(authapimodels.RegisterRequest{
			Name:     "New",
			Email:    "new@example.com",
			Password: "short",
		})
		require.Equal(t, models.ErrKindValidation, models.KindOf(err))
	})
}

func TestLogin(t *testing.T) {
	initTestConfig()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := dbmodels.User{
		Name:         "Existing",
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         models.UserRoleSupervisor,
	}
	user.ID = "user-1"

	t.Run("valid credentials issue a token", func(t *testing.T) {
		store := newFakeUsersStore(&user)
		handler := impl{usersStore: store}

		resp, err := handler.Login(authapimodels.LoginRequest{
			Email:    "user@example.com",
			Password: "secret-pass",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, "user-1", resp.ID)
		require.True(t, resp.IsFirstLogin)
		require.NotNil(t, store.updates["user-1"]["last_login_date"])
	})

	t.Run("first login flag clears after the first visit", func(t *testing.T) {
		visited := user
		now := time.Now()
		visited.LastLoginDate = &now
		handler := impl{usersStore: newFakeUsersStore(&visited)}

		resp, err := handler.Login(authapimodels.LoginRequest{
			Email:    "user@example.com",
			Password: "secret-pass",
		})
		require.NoError(t, err)
		require.False(t, resp.IsFirstLogin)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		handler := impl{usersStore: newFakeUsersStore(&user)}

		_, err := handler.Login(authapimodels.LoginRequest{
			Email:    "user@example.com",
			Password: "wrong-pass",
		})
		require.Equal(t, models.ErrKindInvalidCredentials, models.KindOf(err))
	})

	t.Run("unknown email is rejected with the same error", func(t *testing.T) {
		handler := impl{usersStore: newFakeUsersStore()}

		_, err := handler.Login(authapimodels.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret-pass",
		})
		require.Equal(t, models.ErrKindInvalidCredentials, models.KindOf(err))
	})
}
