package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"

	"timetracker-backend/models"
)

func newTestInstance() *impl {
	i := &impl{
		rules:       map[HTTPMethod]*PathRule{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	i.initRules()
	return i
}

func checkAccess(t *testing.T, i *impl, method, path string, role models.UserRole) bool {
	t.Helper()
	handler, found := i.GetRuleFunc(method, path)
	require.True(t, found, "no rule registered for %v %v", method, path)
	return handler("user-1", role, path)
}

func TestPathMatching(t *testing.T) {
	i := newTestInstance()

	t.Run("exact paths resolve", func(t *testing.T) {
		_, found := i.GetRuleFunc("POST", "/api/v1/time")
		require.True(t, found)
	})

	t.Run("parameterized paths resolve", func(t *testing.T) {
		_, found := i.GetRuleFunc("PUT", "/api/v1/time-entry/0b9aa30e/approve")
		require.True(t, found)
	})

	t.Run("trailing slashes are normalized", func(t *testing.T) {
		_, found := i.GetRuleFunc("GET", "/api/v1/time/")
		require.True(t, found)
	})

	t.Run("unknown paths have no rule", func(t *testing.T) {
		_, found := i.GetRuleFunc("GET", "/api/v1/unknown")
		require.False(t, found)
	})
}

func TestRoleMatrix(t *testing.T) {
	i := newTestInstance()

	t.Run("submit time", func(t *testing.T) {
		require.True(t, checkAccess(t, i, "POST", "/api/v1/time", models.UserRoleEmployee))
		require.True(t, checkAccess(t, i, "POST", "/api/v1/time", models.UserRoleSupervisor))
		require.False(t, checkAccess(t, i, "POST", "/api/v1/time", models.UserRoleSuperAdmin))
	})

	t.Run("approve and reject are supervisor only", func(t *testing.T) {
		for _, path := range []string{
			"/api/v1/time-entry/abc/approve",
			"/api/v1/time-entry/abc/reject",
		} {
			require.True(t, checkAccess(t, i, "PUT", path, models.UserRoleSupervisor))
			require.False(t, checkAccess(t, i, "PUT", path, models.UserRoleEmployee))
			require.False(t, checkAccess(t, i, "PUT", path, models.UserRoleSuperAdmin))
		}
	})

	t.Run("supervisor management is superadmin only", func(t *testing.T) {
		require.True(t, checkAccess(t, i, "POST", "/api/v1/supervisor/create", models.UserRoleSuperAdmin))
		require.False(t, checkAccess(t, i, "POST", "/api/v1/supervisor/create", models.UserRoleSupervisor))
		require.True(t, checkAccess(t, i, "DELETE", "/api/v1/supervisors/abc", models.UserRoleSuperAdmin))
		require.False(t, checkAccess(t, i, "DELETE", "/api/v1/supervisors/abc", models.UserRoleEmployee))
	})

	t.Run("team management excludes employees", func(t *testing.T) {
		require.True(t, checkAccess(t, i, "POST", "/api/v1/team/add", models.UserRoleSupervisor))
		require.True(t, checkAccess(t, i, "POST", "/api/v1/team/add", models.UserRoleSuperAdmin))
		require.False(t, checkAccess(t, i, "POST", "/api/v1/team/add", models.UserRoleEmployee))
	})

	t.Run("own supervisor lookup is employee only", func(t *testing.T) {
		require.True(t, checkAccess(t, i, "GET", "/api/v1/user/supervisor", models.UserRoleEmployee))
		require.False(t, checkAccess(t, i, "GET", "/api/v1/user/supervisor", models.UserRoleSupervisor))
	})

	t.Run("unknown roles are denied everywhere", func(t *testing.T) {
		require.False(t, checkAccess(t, i, "POST", "/api/v1/time", models.UserRole("auditor")))
		require.False(t, checkAccess(t, i, "GET", "/api/v1/reports/summary", models.UserRole("")))
	})
}

func TestGetPermissions(t *testing.T) {
	i := newTestInstance()

	t.Run("employee has no approval permissions", func(t *testing.T) {
		permissions := i.GetPermissions(models.UserRoleEmployee)
		require.NotEmpty(t, permissions[models.TimeModule])
		require.Empty(t, permissions[models.ApprovalModule])
		require.Empty(t, permissions[models.SupervisorsModule])
	})

	t.Run("supervisor may approve", func(t *testing.T) {
		permissions := i.GetPermissions(models.UserRoleSupervisor)
		require.Contains(t, permissions[models.ApprovalModule], models.ApprovePermission)
	})

	t.Run("superadmin manages supervisors but cannot approve", func(t *testing.T) {
		permissions := i.GetPermissions(models.UserRoleSuperAdmin)
		require.Contains(t, permissions[models.SupervisorsModule], models.ManagePermission)
		require.Empty(t, permissions[models.ApprovalModule])
	})
}

func TestParseSwaggerPattern(t *testing.T) {
	path, method, err := parseSwaggerPattern("/api/v1/users [post]")
	require.NoError(t, err)
	require.Equal(t, "/api/v1/users", path)
	require.Equal(t, POST, method)

	_, _, err = parseSwaggerPattern("/api/v1/users")
	require.Error(t, err)
}
