package postgres

import (
	"context"
	"fmt"

	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repositories.NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	notificationModel := NotificationModel{
		UserID:           notification.UserID,
		Content:          notification.Content,
		NotificationType: notification.Type,
		RelatedID:        notification.RelatedID,
		IsRead:           notification.IsRead,
		CreatedAt:        notification.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&notificationModel).Error; err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	notification.ID = notificationModel.ID
	notification.CreatedAt = notificationModel.CreatedAt
	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uint) (*entities.Notification, error) {
	var notificationModel NotificationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notificationModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find notification: %w", err)
	}
	return mapNotification(&notificationModel), nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, skip, limit int) ([]*entities.Notification, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&NotificationModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	var notificationModels []NotificationModel
	err := page(db.Where("user_id = ?", userID), skip, limit).
		Order("created_at DESC").
		Order("id DESC").
		Find(&notificationModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	notifications := make([]*entities.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		notifications = append(notifications, mapNotification(&notificationModels[i]))
	}
	return notifications, total, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&NotificationModel{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("notification not found")
	}
	return nil
}

func mapNotification(notificationModel *NotificationModel) *entities.Notification {
	return &entities.Notification{
		ID:        notificationModel.ID,
		UserID:    notificationModel.UserID,
		Content:   notificationModel.Content,
		Type:      notificationModel.NotificationType,
		RelatedID: notificationModel.RelatedID,
		IsRead:    notificationModel.IsRead,
		CreatedAt: notificationModel.CreatedAt,
	}
}
