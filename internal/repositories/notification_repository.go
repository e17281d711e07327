package repositories

import (
	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	GetByReceiverID(receiverID uint) ([]models.Notification, error)
	GetUnreadByReceiverID(receiverID uint) ([]models.Notification, error)
	GetUnreadCount(receiverID uint) (int64, error)
	MarkAsRead(id uint) error
	MarkAllAsRead(receiverID uint) (int64, error)
	Delete(id uint) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new NotificationRepository backed by PostgreSQL
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *postgresNotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *postgresNotificationRepository) GetByReceiverID(receiverID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *postgresNotificationRepository) GetUnreadByReceiverID(receiverID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("receiver_id = ? AND is_read = false", receiverID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *postgresNotificationRepository) GetUnreadCount(receiverID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("receiver_id = ? AND is_read = false", receiverID).
		Count(&count).Error
	return count, err
}

func (r *postgresNotificationRepository) MarkAsRead(id uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

// MarkAllAsRead flips every unread notification for the receiver and reports
// how many rows were affected.
func (r *postgresNotificationRepository) MarkAllAsRead(receiverID uint) (int64, error) {
	res := r.db.Model(&models.Notification{}).
		Where("receiver_id = ? AND is_read = false", receiverID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *postgresNotificationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Notification{}, id).Error
}
