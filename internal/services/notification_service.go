package services

import (
	"errors"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/kaxixi6666/foodflow/backend/internal/repositories"
	"gorm.io/gorm"
)

// NotificationItem is a notification enriched with its sender's username
type NotificationItem struct {
	models.Notification
	SenderUsername string `json:"senderUsername,omitempty"`
}

// NotificationService implements the notification inbox. Notifications are
// append-only; reading them only ever flips the read flag.
type NotificationService struct {
	notifications repositories.NotificationRepository
	users         repositories.UserRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifications repositories.NotificationRepository, users repositories.UserRepository) *NotificationService {
	return &NotificationService{notifications: notifications, users: users}
}

// List returns the receiver's notifications, newest first, together with
// the current unread count.
func (s *NotificationService) List(receiverID uint) ([]NotificationItem, int64, error) {
	notifications, err := s.notifications.GetByReceiverID(receiverID)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.notifications.GetUnreadCount(receiverID)
	if err != nil {
		return nil, 0, err
	}
	return s.enrich(notifications), unread, nil
}

// ListUnread returns only the receiver's unread notifications
func (s *NotificationService) ListUnread(receiverID uint) ([]NotificationItem, error) {
	notifications, err := s.notifications.GetUnreadByReceiverID(receiverID)
	if err != nil {
		return nil, err
	}
	return s.enrich(notifications), nil
}

// UnreadCount returns the receiver's unread notification count
func (s *NotificationService) UnreadCount(receiverID uint) (int64, error) {
	return s.notifications.GetUnreadCount(receiverID)
}

// MarkAsRead marks one notification read. Only the receiver may do so;
// anyone else gets ErrNotificationForbidden.
func (s *NotificationService) MarkAsRead(id, receiverID uint) error {
	notification, err := s.notifications.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if notification.ReceiverID != receiverID {
		return ErrNotificationForbidden
	}
	return s.notifications.MarkAsRead(id)
}

// MarkAllAsRead marks every unread notification for the receiver and
// returns how many were flipped.
func (s *NotificationService) MarkAllAsRead(receiverID uint) (int64, error) {
	return s.notifications.MarkAllAsRead(receiverID)
}

// Delete removes one notification, receiver-guarded like MarkAsRead
func (s *NotificationService) Delete(id, receiverID uint) error {
	notification, err := s.notifications.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	if notification.ReceiverID != receiverID {
		return ErrNotificationForbidden
	}
	return s.notifications.Delete(id)
}

// enrich resolves sender usernames, fetching each sender at most once
func (s *NotificationService) enrich(notifications []models.Notification) []NotificationItem {
	items := make([]NotificationItem, 0, len(notifications))
	senders := make(map[uint]string)
	for _, n := range notifications {
		item := NotificationItem{Notification: n}
		if n.SenderID != nil {
			name, ok := senders[*n.SenderID]
			if !ok {
				if sender, err := s.users.GetUserByID(*n.SenderID); err == nil {
					name = sender.Username
				}
				senders[*n.SenderID] = name
			}
			item.SenderUsername = name
		}
		items = append(items, item)
	}
	return items
}
