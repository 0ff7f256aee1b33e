package reportshandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timetracker-backend/models"
	dbmodels "timetracker-backend/models/db"
)

type fakeUsersStore struct {
	users map[string]*dbmodels.User
}

func (f *fakeUsersStore) Create(rec dbmodels.User) (string, error) { return rec.ID, nil }
func (f *fakeUsersStore) Update(string, map[string]interface{}) error         { return nil }
func (f *fakeUsersStore) Delete(string) error                                 { return nil }
func (f *fakeUsersStore) FindByEmail(string) (*dbmodels.User, error) { return nil, nil }
func (f *fakeUsersStore) ExistByEmail(string) (bool, error) { return false, nil }
func (f *fakeUsersStore) ListByRole(models.UserRole) ([]dbmodels.User, error) { return nil, nil }
func (f *fakeUsersStore) ListBySupervisor(string) ([]dbmodels.User, error) { return nil, nil }
func (f *fakeUsersStore) DeleteSupervisorCascade(string) error                { return nil }
func (f *fakeUsersStore) GetByID(userID string) (*dbmodels.User, error) {
	return f.users[userID], nil
}

type fakeEntryStore struct {
	byOwner      map[string][]dbmodels.TimeEntry
	bySupervisor map[string][]dbmodels.TimeEntry
}

func (f *fakeEntryStore) Create(rec dbmodels.TimeEntry) (string, error) { return rec.ID, nil }
func (f *fakeEntryStore) GetByID(string) (*dbmodels.TimeEntry, error) { return nil, nil }
func (f *fakeEntryStore) ReassignPending(string, string) (int64, error) { return 0, nil }
func (f *fakeEntryStore) TransitionIfPending(string, map[string]interface{}) (bool, error) {
	return false, nil
}
func (f *fakeEntryStore) ListByOwner(ownerID string) ([]dbmodels.TimeEntry, error) {
	return f.byOwner[ownerID], nil
}
func (f *fakeEntryStore) ListBySupervisor(supervisorID, employeeID string) ([]dbmodels.TimeEntry, error) {
	return f.bySupervisor[supervisorID], nil
}
func (f *fakeEntryStore) ListPendingBySupervisor(supervisorID string) ([]dbmodels.TimeEntry, error) {
	return f.bySupervisor[supervisorID], nil
}

func entry(date string, minutes int, project string, status models.EntryStatus) dbmodels.TimeEntry {
	return dbmodels.TimeEntry{
		Date:    date,
		Minutes: minutes,
		Project: project,
		Status:  status,
	}
}

func TestBuildSummary(t *testing.T) {
	t.Run("aggregates totals per project week and month", func(t *testing.T) {
		result := buildSummary([]dbmodels.TimeEntry{
			entry("2024-03-01", 60, "Alpha", models.EntryStatusApproved),
			entry("2024-03-02", 30, "Alpha", models.EntryStatusPending),
			entry("2024-04-15", 90, "", models.EntryStatusRejected),
		})
		require.Equal(t, 180, result.TotalMinutes)
		require.Equal(t, 3, result.EntryCount)
		require.Equal(t, 90, result.PerProject["Alpha"])
		require.Equal(t, 90, result.PerProject["Unknown"])
		require.Equal(t, 90, result.Monthly["2024-03"])
		require.Equal(t, 90, result.Monthly["2024-04"])
		require.Equal(t, 1, result.StatusCounts[string(models.EntryStatusApproved)])
		require.Equal(t, 1, result.StatusCounts[string(models.EntryStatusPending)])
		require.Equal(t, 1, result.StatusCounts[string(models.EntryStatusRejected)])
	})

	t.Run("clamps negative minutes to zero", func(t *testing.T) {
		result := buildSummary([]dbmodels.TimeEntry{
			entry("2024-03-01", -45, "Alpha", models.EntryStatusPending),
		})
		require.Equal(t, 0, result.TotalMinutes)
		require.Equal(t, 1, result.EntryCount)
	})

	t.Run("average divides by at least four weeks", func(t *testing.T) {
		result := buildSummary([]dbmodels.TimeEntry{
			entry("2024-03-01", 400, "Alpha", models.EntryStatusApproved),
		})
		require.InDelta(t, 100.0, result.AvgPerWeekMinutes, 0.001)
	})

	t.Run("empty input yields an empty summary", func(t *testing.T) {
		result := buildSummary(nil)
		require.Equal(t, 0, result.TotalMinutes)
		require.Equal(t, 0, result.EntryCount)
		require.Empty(t, result.Weekly)
	})
}

func TestWeekKey(t *testing.T) {
	// 2024-01-01 is a Monday, so January 1st lands in week 1.
	require.Equal(t, "2024-W01", weekKey(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	// the first Sunday starts the next bucket
	require.Equal(t, "2024-W02", weekKey(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "2024-W09", weekKey(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSummaryScope(t *testing.T) {
	ownEntries := []dbmodels.TimeEntry{entry("2024-03-01", 60, "Alpha", models.EntryStatusApproved)}
	teamEntries := []dbmodels.TimeEntry{
		entry("2024-03-01", 30, "Beta", models.EntryStatusPending),
		entry("2024-03-02", 30, "Beta", models.EntryStatusPending),
	}
	employee := dbmodels.User{Role: models.UserRoleEmployee}
	employee.ID = "emp-1"
	supervisor := dbmodels.User{Role: models.UserRoleSupervisor}
	supervisor.ID = "sup-1"
	admin := dbmodels.User{Role: models.UserRoleSuperAdmin}
	admin.ID = "admin-1"

	handler := impl{
		store: &fakeEntryStore{
			byOwner:      map[string][]dbmodels.TimeEntry{"emp-1": ownEntries},
			bySupervisor: map[string][]dbmodels.TimeEntry{"sup-1": teamEntries},
		},
		usersStore: &fakeUsersStore{users: map[string]*dbmodels.User{
			"emp-1":   &employee,
			"sup-1":   &supervisor,
			"admin-1": &admin,
		}},
	}

	t.Run("employee sees their own entries", func(t *testing.T) {
		result, err := handler.Summary("emp-1", "", "")
		require.NoError(t, err)
		require.Equal(t, 60, result.TotalMinutes)
	})

	t.Run("supervisor sees the team", func(t *testing.T) {
		result, err := handler.Summary("sup-1", "", "")
		require.NoError(t, err)
		require.Equal(t, 60, result.TotalMinutes)
		require.Equal(t, 2, result.EntryCount)
	})

	t.Run("superadmin must pick a scope", func(t *testing.T) {
		_, err := handler.Summary("admin-1", "", "")
		require.Equal(t, models.ErrKindValidation, models.KindOf(err))

		result, err := handler.Summary("admin-1", "sup-1", "")
		require.NoError(t, err)
		require.Equal(t, 2, result.EntryCount)
	})
}
