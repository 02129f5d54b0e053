package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"salonbook/models"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// NewReminderTask schedules an appointment reminder at fireAt. The task ID makes
// re-enqueueing the same booking slot a no-op.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(fmt.Sprintf("reminder:%s:%sT%s", payload.BookingID, payload.Date, payload.Start)),
		asynq.MaxRetry(3),
	}

	return task, opts, nil
}
