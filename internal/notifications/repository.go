package notifications

import (
	"time"

	"github.com/joao-fontenele/shopflow/internal/domain"
	"github.com/joao-fontenele/shopflow/internal/store"
)

type NotificationRepository struct {
	notifications *store.Store[domain.Notification]
	now           func() time.Time
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{
		notifications: store.New[domain.Notification](),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (r *NotificationRepository) List() []domain.Notification {
	return r.notifications.List()
}

func (r *NotificationRepository) ListByUser(userID int64) []domain.Notification {
	return r.notifications.Filter(func(n domain.Notification) bool {
		return n.UserID == userID
	})
}

// Send records a notification as sent. Notifications are never modified after
// this point.
func (r *NotificationRepository) Send(userID int64, message string) domain.Notification {
	createdAt := r.now()
	return r.notifications.Insert(func(id int64) domain.Notification {
		return domain.Notification{
			ID:        id,
			UserID:    userID,
			Message:   message,
			Status:    domain.NotificationStatusSent,
			CreatedAt: createdAt,
		}
	})
}
