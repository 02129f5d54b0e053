package tasks

import (
	"encoding/json"

	"salonbook/models"

	"github.com/hibiken/asynq"
)

const TypeBookingNotify = "booking:notify"

// NewBookingNotificationTask builds the immediate notification for a booking change.
func NewBookingNotificationTask(payload models.BookingNotificationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingNotify, b)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}
