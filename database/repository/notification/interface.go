package notificationRepo

import (
	"context"
	"errors"

	"easyislanders/models"
)

// ErrNotFound is returned when a notification id does not resolve.
var ErrNotFound = errors.New("notification not found")

// NotificationRepository is the append-only notification log. Prepend puts
// the record at the head of the stored sequence (assigning its Seq), so the
// first element of List is always the most recently appended.
type NotificationRepository interface {
	Prepend(ctx context.Context, n *models.Notification) error
	// List returns notifications most-recent-first. An empty userID lists all
	// users; limit <= 0 means no limit.
	List(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	// MarkRead flips exactly one record's read flag and leaves the rest unchanged.
	MarkRead(ctx context.Context, id string) error
	// TrimTo drops the oldest records so at most n remain.
	TrimTo(ctx context.Context, n int) error
}
