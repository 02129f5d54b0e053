package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/models"
	"salonbook/services/tasks"
	"salonbook/utils"

	"github.com/hibiken/asynq"
)

// NotificationService is told about every successful booking change.
type NotificationService interface {
	BookingChanged(ctx context.Context, booking *models.Booking, event models.BookingEvent) error
}

// NoopNotificationService drops every event.
type NoopNotificationService struct{}

func (NoopNotificationService) BookingChanged(context.Context, *models.Booking, models.BookingEvent) error {
	return nil
}

// Enqueuer is the part of *asynq.Client used here.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotificationService turns booking changes into background tasks.
type QueueNotificationService struct {
	queue        Enqueuer
	reminderLead time.Duration
	now          func() time.Time
}

func NewQueueNotificationService(queue Enqueuer, reminderLead time.Duration) (*QueueNotificationService, error) {
	if queue == nil {
		return nil, fmt.Errorf("notification service initialization error: queue is nil")
	}
	return &QueueNotificationService{
		queue:        queue,
		reminderLead: reminderLead,
		now:          func() time.Time { return time.Now().UTC() },
	}, nil
}

// BookingChanged enqueues an immediate notification and, for open bookings, a
// reminder reminderLead before the appointment.
func (s *QueueNotificationService) BookingChanged(ctx context.Context, booking *models.Booking, event models.BookingEvent) error {
	date := utils.FormatDate(booking.Date)
	task, opts, err := tasks.NewBookingNotificationTask(models.BookingNotificationPayload{
		Event:     event,
		BookingID: booking.ID,
		UserID:    booking.UserID,
		SalonID:   booking.SalonID,
		StaffID:   booking.StaffID,
		Date:      date,
		Start:     booking.TimeSlot.Start,
		End:       booking.TimeSlot.End,
		Status:    booking.Status,
	})
	if err != nil {
		return fmt.Errorf("BookingChanged: failed to build notification task: %w", err)
	}
	if _, err := s.queue.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("BookingChanged: failed to enqueue notification: %w", err)
	}

	if booking.Status != models.StatusPending && booking.Status != models.StatusConfirmed {
		return nil
	}
	fireAt := utils.SlotInstant(booking.Date, booking.TimeSlot.Start).Add(-s.reminderLead)
	if !fireAt.After(s.now()) {
		return nil
	}
	reminder, ropts, err := tasks.NewReminderTask(models.ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Date:      date,
		Start:     booking.TimeSlot.Start,
		FireDate:  fireAt.Format(time.RFC3339),
	}, fireAt)
	if err != nil {
		return fmt.Errorf("BookingChanged: failed to build reminder task: %w", err)
	}
	if _, err := s.queue.EnqueueContext(ctx, reminder, ropts...); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		return fmt.Errorf("BookingChanged: failed to schedule reminder: %w", err)
	}
	return nil
}
