package notificationshandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"timetracker-backend/models"
	notificationapimodels "timetracker-backend/models/api/notification"
	dbmodels "timetracker-backend/models/db"
)

type fakeNotificationsStore struct {
	created []dbmodels.Notification
	read    []string
}

func (f *fakeNotificationsStore) Create(rec dbmodels.Notification) (string, error) {
	f.created = append(f.created, rec)
	return "notification-1", nil
}

func (f *fakeNotificationsStore) ListByOwner(userID string) ([]dbmodels.Notification, error) {
	var list []dbmodels.Notification
	for _, rec := range f.created {
		if rec.UserID == userID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeNotificationsStore) MarkAllRead(userID string) error {
	f.read = append(f.read, userID)
	return nil
}

func TestNotifications(t *testing.T) {
	store := &fakeNotificationsStore{}
	handler := impl{store: store}

	t.Run("create requires a name and description", func(t *testing.T) {
		err := handler.Create("user-1", notificationapimodels.NotificationData{})
		require.Equal(t, models.ErrKindValidation, models.KindOf(err))
	})

	t.Run("create stores the owner", func(t *testing.T) {
		err := handler.Create("user-1", notificationapimodels.NotificationData{
			Name:        "Entry approved",
			Description: "Your entry for 2025-03-10 was approved",
		})
		require.NoError(t, err)
		require.Len(t, store.created, 1)
		require.Equal(t, "user-1", store.created[0].UserID)
		require.False(t, store.created[0].Read)
	})

	t.Run("list is scoped to the owner", func(t *testing.T) {
		list, err := handler.List("user-1")
		require.NoError(t, err)
		require.Len(t, list, 1)

		list, err = handler.List("user-2")
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("mark all read targets the requester", func(t *testing.T) {
		require.NoError(t, handler.MarkAllRead("user-1"))
		require.Equal(t, []string{"user-1"}, store.read)
	})
}
