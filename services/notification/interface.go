package notification

import (
	"context"
	"fmt"
	"sync"

	notificationRepo "easyislanders/database/repository/notification"
	"easyislanders/models"

	"go.uber.org/zap"
)

// NotificationService is the append-only notification emitter. Every async
// event in the system (lifecycle transitions, taxi dispatch, reminders)
// lands here as a user-visible record. The user id is always an explicit
// parameter; there is no implicit "current user".
type NotificationService interface {
	Append(ctx context.Context, userID string, typ models.NotificationType, title, message string) (*models.Notification, error)
	List(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	// Subscribe registers an in-process callback invoked for every appended
	// notification. The returned function removes the subscription.
	Subscribe(fn func(models.Notification)) func()
}

// Pusher delivers a notification to a device channel (FCM). Optional.
type Pusher interface {
	Push(ctx context.Context, n models.Notification) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo      notificationRepo.NotificationRepository
	Pusher    Pusher
	Logger    *zap.Logger
	Retention int // max records kept; <= 0 keeps everything

	mu      sync.Mutex
	nextSub int
	subs    map[int]func(models.Notification)
}

// NewDefaultNotificationService wires the emitter over a repository.
func NewDefaultNotificationService(repo notificationRepo.NotificationRepository, logger *zap.Logger, retention int) (*DefaultNotificationService, error) {
	if repo == nil {
		return nil, fmt.Errorf("notification service initialization error: repository is nil")
	}
	return &DefaultNotificationService{
		Repo:      repo,
		Logger:    logger,
		Retention: retention,
		subs:      make(map[int]func(models.Notification)),
	}, nil
}
