package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	TimeModule          Module = "TIME"
	ApprovalModule      Module = "APPROVAL"
	TeamModule          Module = "TEAM"
	SupervisorsModule   Module = "SUPERVISORS"
	ReportsModule       Module = "REPORTS"
	GoalsModule         Module = "GOALS"
	NotificationsModule Module = "NOTIFICATIONS"
)

type Permission string

const (
	CreatePermission  Permission = "CREATE"
	EditPermission    Permission = "EDIT"
	ViewPermission    Permission = "VIEW"
	ManagePermission  Permission = "MANAGE"
	ApprovePermission Permission = "APPROVE"
)
