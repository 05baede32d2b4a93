package notification

import (
	"context"
	"fmt"
	"time"

	"easyislanders/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Append records a notification at the head of the log, fans it out to
// subscribers and, when a pusher is wired, sends a best-effort device push.
// Push and subscriber failures never fail the append.
func (s *DefaultNotificationService) Append(ctx context.Context, userID string, typ models.NotificationType, title, message string) (*models.Notification, error) {
	if userID == "" {
		return nil, fmt.Errorf("Append: user id is required")
	}

	n := models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := s.Repo.Prepend(ctx, &n); err != nil {
		return nil, fmt.Errorf("Append: failed to store notification: %w", err)
	}

	if s.Retention > 0 {
		if err := s.Repo.TrimTo(ctx, s.Retention); err != nil && s.Logger != nil {
			s.Logger.Warn("notification trim failed", zap.Error(err))
		}
	}

	for _, fn := range s.snapshotSubs() {
		fn(n)
	}

	if s.Pusher != nil {
		if err := s.Pusher.Push(ctx, n); err != nil && s.Logger != nil {
			s.Logger.Warn("push delivery failed",
				zap.String("notification", n.ID),
				zap.String("user", userID),
				zap.Error(err))
		}
	}

	return &n, nil
}

// List returns the user's notifications, most recent first.
func (s *DefaultNotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.List(ctx, userID, 0)
}

// MarkRead flips exactly one record's read flag.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(ctx, id)
}

// Subscribe registers fn for future appends and returns its unsubscriber.
func (s *DefaultNotificationService) Subscribe(fn func(models.Notification)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]func(models.Notification))
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *DefaultNotificationService) snapshotSubs() []func(models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]func(models.Notification), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
