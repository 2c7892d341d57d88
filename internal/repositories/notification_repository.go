package repositories

import (
	"fmt"

	"github.com/linkup-app/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	GetNotificationsByRecipient(recipientID string) ([]models.Notification, error)
	MarkNotificationRead(id uint, recipientID string) error
}

// PostgresNotificationRepository implements NotificationRepository for PostgreSQL
type PostgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository
func NewPostgresNotificationRepository(db *gorm.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

// CreateNotification creates a new notification in PostgreSQL
func (r *PostgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetNotificationsByRecipient retrieves notifications for a user, newest first
func (r *PostgresNotificationRepository) GetNotificationsByRecipient(recipientID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkNotificationRead marks a notification as read, scoped to its recipient
func (r *PostgresNotificationRepository) MarkNotificationRead(id uint, recipientID string) error {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}
