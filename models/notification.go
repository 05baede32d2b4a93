package models

import "time"

// NotificationType categorises a user-visible event.
type NotificationType string

const (
	NotificationBooking   NotificationType = "booking"
	NotificationSocial    NotificationType = "social"
	NotificationSystem    NotificationType = "system"
	NotificationPromotion NotificationType = "promotion"
)

// Notification is a user-visible event record. The stored sequence is
// most-recent-first: Seq is assigned at append time and only ever grows,
// so ordering is a property of the sequence itself, not of a read-time sort.
type Notification struct {
	ID        string           `bson:"id" json:"id"`
	UserID    string           `bson:"user_id" json:"userId"`
	Type      NotificationType `bson:"type" json:"type"`
	Title     string           `bson:"title" json:"title"`
	Message   string           `bson:"message" json:"message"`
	Read      bool             `bson:"read" json:"read"`
	Seq       int64            `bson:"seq" json:"-"`
	CreatedAt time.Time        `bson:"created_at" json:"timestamp"`
}

// ReminderPayload is the asynq task payload for a scheduled viewing reminder.
type ReminderPayload struct {
	BookingID   string    `json:"bookingId"`
	UserID      string    `json:"userId"`
	ItemTitle   string    `json:"itemTitle"`
	ViewingTime time.Time `json:"viewingTime"`
}
