package rbac

import (
	"timetracker-backend/models"
)

var (
	EmployeeSupervisorRoleSet   = []models.UserRole{models.UserRoleEmployee, models.UserRoleSupervisor}
	SupervisorRoleSet           = []models.UserRole{models.UserRoleSupervisor}
	SupervisorSuperAdminRoleSet = []models.UserRole{models.UserRoleSupervisor, models.UserRoleSuperAdmin}
	SuperAdminRoleSet           = []models.UserRole{models.UserRoleSuperAdmin}
	AllRoles                    = []models.UserRole{models.UserRoleEmployee, models.UserRoleSupervisor, models.UserRoleSuperAdmin}
)

func (i *impl) initRules() {
	i.addTimeRbac()
	i.addApprovalRbac()
	i.addTeamRbac()
	i.addSupervisorsRbac()
	i.addReportsRbac()
	i.addGoalsRbac()
	i.addNotificationsRbac()
}

func (i *impl) addTimeRbac() {
	// the superadmin has no entries of its own in this model
	i.RegisterRule(models.TimeModule, models.CreatePermission, EmployeeSupervisorRoleSet, "/api/v1/time [post]", nil)
	i.RegisterRule(models.TimeModule, models.ViewPermission, EmployeeSupervisorRoleSet, "/api/v1/time [get]", nil)
	i.RegisterRule(models.TimeModule, models.ViewPermission, SupervisorRoleSet, "/api/v1/supervisor/entries [get]", nil)
	i.RegisterRule(models.TimeModule, models.ViewPermission, SupervisorSuperAdminRoleSet, "/api/v1/pending-entries [get]", nil)
	i.RegisterRule(models.TimeModule, models.ViewPermission, SuperAdminRoleSet, "/api/v1/superadmin/supervisor/entries [get]", nil)
	i.RegisterRule(models.TimeModule, models.ManagePermission, SuperAdminRoleSet, "/api/v1/superadmin/entries/reassign [post]", nil)
}

func (i *impl) addApprovalRbac() {
	// supervisor only; excluding the superadmin here is a confirmed product
	// decision, not an oversight
	i.RegisterRule(models.ApprovalModule, models.ApprovePermission, SupervisorRoleSet, "/api/v1/time-entry/{entryId}/approve [put]", nil)
	i.RegisterRule(models.ApprovalModule, models.ApprovePermission, SupervisorRoleSet, "/api/v1/time-entry/{entryId}/reject [put]", nil)
}

func (i *impl) addTeamRbac() {
	i.RegisterRule(models.TeamModule, models.ManagePermission, SupervisorSuperAdminRoleSet, "/api/v1/team/add [post]", nil)
	i.RegisterRule(models.TeamModule, models.ManagePermission, SupervisorSuperAdminRoleSet, "/api/v1/team/{employeeId} [delete]", nil)
	i.RegisterRule(models.TeamModule, models.ViewPermission, SupervisorSuperAdminRoleSet, "/api/v1/team [get]", nil)
	i.RegisterRule(models.TeamModule, models.ViewPermission, SupervisorSuperAdminRoleSet, "/api/v1/employees [get]", nil)
	i.RegisterRule(models.TeamModule, models.ViewPermission, []models.UserRole{models.UserRoleEmployee}, "/api/v1/user/supervisor [get]", nil)
	// every authenticated user may read their own permission map
	i.RegisterRule(models.TeamModule, models.ViewPermission, AllRoles, "/api/v1/user/permissions [get]", AllowFunc())
}

func (i *impl) addSupervisorsRbac() {
	i.RegisterRule(models.SupervisorsModule, models.CreatePermission, SuperAdminRoleSet, "/api/v1/supervisor/create [post]", nil)
	i.RegisterRule(models.SupervisorsModule, models.ViewPermission, SuperAdminRoleSet, "/api/v1/supervisors [get]", nil)
	i.RegisterRule(models.SupervisorsModule, models.ViewPermission, SuperAdminRoleSet, "/api/v1/supervisors/{supervisorId} [get]", nil)
	i.RegisterRule(models.SupervisorsModule, models.ViewPermission, SuperAdminRoleSet, "/api/v1/supervisors/{supervisorId}/team [get]", nil)
	i.RegisterRule(models.SupervisorsModule, models.ManagePermission, SuperAdminRoleSet, "/api/v1/supervisors/{supervisorId} [delete]", nil)
}

func (i *impl) addReportsRbac() {
	// scope narrowing happens in the handler: employees see their own entries,
	// supervisors their snapshot team, the superadmin any team by explicit id
	i.RegisterRule(models.ReportsModule, models.ViewPermission, AllRoles, "/api/v1/reports/summary [get]", nil)
}

func (i *impl) addGoalsRbac() {
	i.RegisterRule(models.GoalsModule, models.ViewPermission, AllRoles, "/api/v1/goals [get]", nil)
	i.RegisterRule(models.GoalsModule, models.CreatePermission, AllRoles, "/api/v1/goals [post]", nil)
	i.RegisterRule(models.GoalsModule, models.EditPermission, AllRoles, "/api/v1/goals/{projectId} [put]", nil)
	i.RegisterRule(models.GoalsModule, models.EditPermission, AllRoles, "/api/v1/goals/{projectId} [delete]", nil)
	i.RegisterRule(models.GoalsModule, models.ViewPermission, AllRoles, "/api/v1/goals/{projectId}/tasks [get]", nil)
	i.RegisterRule(models.GoalsModule, models.EditPermission, AllRoles, "/api/v1/goals/{projectId}/tasks [post]", nil)
}

func (i *impl) addNotificationsRbac() {
	i.RegisterRule(models.NotificationsModule, models.ViewPermission, AllRoles, "/api/v1/notifications [get]", nil)
	i.RegisterRule(models.NotificationsModule, models.CreatePermission, AllRoles, "/api/v1/notifications [post]", nil)
	i.RegisterRule(models.NotificationsModule, models.EditPermission, AllRoles, "/api/v1/notifications/markAllRead [put]", nil)
	i.RegisterRule(models.NotificationsModule, models.EditPermission, AllRoles, "/api/v1/notifications/markAllRead [post]", nil)
}
