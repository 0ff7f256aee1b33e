package initializers

import (
	"timetracker-backend/config"
	"timetracker-backend/fiberlog"
	authhandler "timetracker-backend/lib/auth"
	goalshandler "timetracker-backend/lib/goals"
	notificationshandler "timetracker-backend/lib/notifications"
	rbachandler "timetracker-backend/lib/rbac"
	reportshandler "timetracker-backend/lib/reports"
	teamhandler "timetracker-backend/lib/team"
	timeentryhandler "timetracker-backend/lib/timeentry"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	SeedSuperAdmin()
	rbachandler.NewHandler()
	authhandler.NewHandler()
	timeentryhandler.NewHandler()
	teamhandler.NewHandler()
	reportshandler.NewHandler()
	goalshandler.NewHandler()
	notificationshandler.NewHandler()
}
