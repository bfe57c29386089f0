package services

import (
	"context"
	"errors"

	"blog-service/internal/application/common"
	"blog-service/internal/application/interfaces"
	"blog-service/internal/application/mapper"
	"blog-service/internal/application/query"
	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"

	"github.com/rs/zerolog"
)

var ErrBusUnavailable = errors.New("notification bus unavailable")

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	bus              interfaces.NotificationBus
	logger           zerolog.Logger
}

// NewNotificationService accepts a nil bus, in which case notifications are
// only written to the log.
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	bus interfaces.NotificationBus,
	logger zerolog.Logger,
) interfaces.NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		bus:              bus,
		logger:           logger.With().Str("component", "notification_service").Logger(),
	}
}

func (s *NotificationService) Publish(ctx context.Context, userID uint, message, notificationType string, relatedID *uint) error {
	if s.bus != nil {
		event := interfaces.NotificationEvent{
			UserID:    userID,
			Message:   message,
			Type:      notificationType,
			RelatedID: relatedID,
		}
		if err := s.bus.Publish(ctx, event); err != nil {
			s.logger.Warn().Err(err).Uint("user_id", userID).Str("type", notificationType).Msg("notification publish failed")
		}
	}

	notification := entities.NewNotification(userID, message, notificationType, relatedID)
	return s.notificationRepo.Create(ctx, notification)
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID uint, page query.Page) (*common.NotificationListResult, error) {
	page = page.Normalize()
	notifications, total, err := s.notificationRepo.ListByUser(ctx, userID, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}

	result := &common.NotificationListResult{
		Notifications: make([]*common.NotificationResult, 0, len(notifications)),
		Total:         total,
	}
	for _, n := range notifications {
		result.Notifications = append(result.Notifications, mapper.NewNotificationResultFromEntity(n))
	}
	return result, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint, userID uint) (*common.NotificationResult, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, domain.NotFound("notification not found")
	}
	if notification.UserID != userID {
		return nil, domain.Forbidden("not authorized to read this notification")
	}

	if !notification.IsRead {
		if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
			return nil, err
		}
		notification.IsRead = true
	}
	return mapper.NewNotificationResultFromEntity(notification), nil
}

func (s *NotificationService) Stream(userID uint, fn func(payload []byte)) (func() error, error) {
	if s.bus == nil {
		return nil, ErrBusUnavailable
	}
	return s.bus.Subscribe(userID, fn)
}
