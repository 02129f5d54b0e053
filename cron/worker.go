package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/services/tasks"
	"salonbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Sender delivers a message to a platform user.
type Sender interface {
	Send(ctx context.Context, userID, subject, body string) error
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	Logger *zap.Logger
}

func (s LogSender) Send(_ context.Context, userID, subject, body string) error {
	s.Logger.Info("Notification", zap.String("userID", userID), zap.String("subject", subject), zap.String("body", body))
	return nil
}

// Worker processes booking notification and reminder tasks.
type Worker struct {
	server   *asynq.Server
	bookings bookingRepo.BookingRepository
	sender   Sender
	logger   *zap.Logger
}

func NewWorker(redisOpt asynq.RedisClientOpt, bookings bookingRepo.BookingRepository, sender Sender) *Worker {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	return &Worker{server: srv, bookings: bookings, sender: sender, logger: utils.GetLogger()}
}

// Mux routes task types to handlers.
func (w *Worker) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotify, w.HandleBookingNotification)
	mux.HandleFunc(tasks.TypeBookingReminder, w.HandleReminder)
	return mux
}

// Start runs the worker in the background, retrying startup with backoff.
func (w *Worker) Start() {
	mux := w.Mux()
	go func() {
		w.logger.Info("Starting booking worker")
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.server.Start(mux)
			if err == nil {
				return
			}
			w.logger.Error("Booking worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
		w.logger.Error("Booking worker gave up starting")
	}()
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) HandleBookingNotification(ctx context.Context, task *asynq.Task) error {
	var p models.BookingNotificationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		w.logger.Error("Invalid booking notification payload", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	subject, body := renderNotification(p)
	if err := w.sender.Send(ctx, p.UserID, subject, body); err != nil {
		w.logger.Warn("Failed to send booking notification", zap.String("bookingID", p.BookingID), zap.Error(err))
		return err
	}
	return nil
}

func (w *Worker) HandleReminder(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		w.logger.Error("Invalid reminder payload", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	b, err := w.bookings.GetByID(ctx, p.BookingID)
	if err != nil {
		return fmt.Errorf("failed to load booking %s: %w", p.BookingID, err)
	}
	// Reminders outlive reschedules and cancellations; only fire for the current slot.
	if b == nil || (b.Status != models.StatusPending && b.Status != models.StatusConfirmed) ||
		utils.FormatDate(b.Date) != p.Date || b.TimeSlot.Start != p.Start {
		w.logger.Debug("Skipping stale reminder", zap.String("bookingID", p.BookingID))
		return nil
	}

	body := fmt.Sprintf("Reminder: your appointment is on %s at %s.", p.Date, p.Start)
	if err := w.sender.Send(ctx, p.UserID, "Upcoming appointment", body); err != nil {
		w.logger.Warn("Failed to send reminder", zap.String("bookingID", p.BookingID), zap.Error(err))
		return err
	}
	return nil
}

func renderNotification(p models.BookingNotificationPayload) (string, string) {
	when := fmt.Sprintf("%s %s-%s", p.Date, p.Start, p.End)
	switch p.Event {
	case models.EventBookingCreated:
		return "Booking received", fmt.Sprintf("Your booking for %s is pending confirmation.", when)
	case models.EventBookingUpdated:
		return "Booking updated", fmt.Sprintf("Your booking is now %s and awaits confirmation.", when)
	case models.EventBookingRescheduled:
		return "Booking rescheduled", fmt.Sprintf("Your booking moved to %s and awaits confirmation.", when)
	case models.EventBookingCancelled:
		return "Booking cancelled", fmt.Sprintf("Your booking for %s was cancelled.", when)
	default:
		return "Booking status changed", fmt.Sprintf("Your booking for %s is now %s.", when, p.Status)
	}
}
