package notificationRepo

import (
	"context"
	"sync"

	"easyislanders/models"
)

// MemoryNotificationRepo is an in-memory NotificationRepository. The slice
// head is always the most recently appended record.
type MemoryNotificationRepo struct {
	mu            sync.RWMutex
	notifications []models.Notification
	nextSeq       int64
}

// NewMemoryNotificationRepo creates an empty in-memory notification repository.
func NewMemoryNotificationRepo() *MemoryNotificationRepo {
	return &MemoryNotificationRepo{}
}

func (repo *MemoryNotificationRepo) Prepend(ctx context.Context, n *models.Notification) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.nextSeq++
	n.Seq = repo.nextSeq
	repo.notifications = append([]models.Notification{*n}, repo.notifications...)
	return nil
}

func (repo *MemoryNotificationRepo) List(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]models.Notification, 0, len(repo.notifications))
	for _, n := range repo.notifications {
		if userID != "" && n.UserID != userID {
			continue
		}
		out = append(out, n)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (repo *MemoryNotificationRepo) MarkRead(ctx context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for i := range repo.notifications {
		if repo.notifications[i].ID == id {
			repo.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

func (repo *MemoryNotificationRepo) TrimTo(ctx context.Context, n int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if n > 0 && len(repo.notifications) > n {
		repo.notifications = repo.notifications[:n]
	}
	return nil
}
