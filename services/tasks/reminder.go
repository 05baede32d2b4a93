package tasks

import (
	"encoding/json"
	"time"

	"easyislanders/models"

	"github.com/hibiken/asynq"
)

const TypeViewingReminder = "viewing:reminder"

// NewViewingReminderTask builds the asynq task that fires a viewing
// reminder notification at fireAt.
func NewViewingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeViewingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
