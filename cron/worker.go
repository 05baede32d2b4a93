package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"easyislanders/config"
	"easyislanders/models"
	"easyislanders/services/notification"
	"easyislanders/services/tasks"

	"github.com/hibiken/asynq"
)

// redisOpts returns the asynq Redis connection for the reminder queue.
func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeViewingReminder, handleViewingReminder(notifSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleViewingReminder(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		msg := fmt.Sprintf("Your viewing of %s is coming up at %s.",
			p.ItemTitle, p.ViewingTime.Local().Format("15:04 on Mon, 2 Jan"))

		if _, err := notifSvc.Append(ctx, p.UserID, models.NotificationBooking, "Viewing Reminder", msg); err != nil {
			log.Printf("[ReminderHandler] failed to append reminder notification: %v", err)
			return err
		}
		return nil
	}
}

// AsynqReminderScheduler enqueues viewing reminders ahead of the viewing
// time. It satisfies booking.ReminderScheduler.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration // how long before the viewing the reminder fires
}

// NewAsynqReminderScheduler builds a scheduler over the reminder queue.
func NewAsynqReminderScheduler(lead time.Duration) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(redisOpts()),
		Lead:   lead,
	}
}

func (s *AsynqReminderScheduler) ScheduleViewingReminder(ctx context.Context, b models.Booking) error {
	if b.ViewingTime == nil {
		return nil
	}

	fireAt := b.ViewingTime.Add(-s.Lead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	payload := models.ReminderPayload{
		BookingID:   b.ID,
		UserID:      b.UserID,
		ItemTitle:   b.ItemTitle,
		ViewingTime: *b.ViewingTime,
	}

	task, opts, err := tasks.NewViewingReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("ScheduleViewingReminder: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("ScheduleViewingReminder: enqueue failed: %w", err)
	}
	return nil
}
