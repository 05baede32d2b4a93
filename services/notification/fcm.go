package notification

import (
	"context"
	"fmt"

	"easyislanders/models"

	"firebase.google.com/go/v4/messaging"
)

// FCMPusher delivers notifications over Firebase Cloud Messaging. Clients
// subscribe their devices to the per-user topic, so no token registry is
// needed server-side.
type FCMPusher struct {
	Client *messaging.Client
}

// Push sends the notification to the recipient's FCM topic.
func (p *FCMPusher) Push(ctx context.Context, n models.Notification) error {
	if p.Client == nil {
		return fmt.Errorf("Push: FCM client is not initialized")
	}

	msg := &messaging.Message{
		Topic: "user-" + n.UserID,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: map[string]string{
			"type":           string(n.Type),
			"notificationId": n.ID,
		},
	}

	if _, err := p.Client.Send(ctx, msg); err != nil {
		return fmt.Errorf("Push: failed to send FCM message: %w", err)
	}
	return nil
}
