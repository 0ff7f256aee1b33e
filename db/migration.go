package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "timetracker-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	if err := DB.AutoMigrate(&dbmodels.TimeEntry{}); err != nil {
		return errors.Wrap(err, "failed to migrate TimeEntry")
	}
	if err := DB.AutoMigrate(&dbmodels.Project{}); err != nil {
		return errors.Wrap(err, "failed to migrate Project")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "failed to migrate Notification")
	}
	log.Info("migrations finished")
	return nil
}
