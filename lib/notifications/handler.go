package notificationshandler

import (
	log "github.com/sirupsen/logrus"

	"timetracker-backend/db"
	notificationsstore "timetracker-backend/lib/notifications/store"
	notificationapimodels "timetracker-backend/models/api/notification"
	dbmodels "timetracker-backend/models/db"
)

type Provider interface {
	Create(userID string, data notificationapimodels.NotificationData) error
	List(userID string) ([]notificationapimodels.NotificationView, error)
	MarkAllRead(userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: notificationsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store notificationsstore.Provider
}

func (i impl) Create(userID string, data notificationapimodels.NotificationData) error {
	logger := log.WithField("user_id", userID)
	if err := data.Validate(); err != nil {
		return err
	}
	rec := dbmodels.Notification{
		Name:        data.Name,
		Description: data.Description,
		UserID:      userID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create the notification")
		return err
	}
	logger.WithField("rec_id", id).Info("notification created")
	return nil
}

func (i impl) List(userID string) ([]notificationapimodels.NotificationView, error) {
	recList, err := i.store.ListByOwner(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to list notifications")
		return nil, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) MarkAllRead(userID string) error {
	err := i.store.MarkAllRead(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to mark notifications as read")
		return err
	}
	return nil
}
