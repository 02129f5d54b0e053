package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/metrics"
	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

const maxNotesLength = 500

var cancelledOnly = []models.BookingStatus{models.StatusCancelled}

// normalizeNotes trims notes and enforces the length limit.
func normalizeNotes(notes string) (string, error) {
	notes = strings.TrimSpace(notes)
	if len([]rune(notes)) > maxNotesLength {
		return "", NewValidationError("Notes cannot exceed %d characters", maxNotesLength)
	}
	return notes, nil
}

func validateDate(field, value string) error {
	if !utils.IsValidDateFormat(value) {
		return NewValidationError("%s must be in YYYY-MM-DD format", field)
	}
	return nil
}

func validateTime(field, value string) error {
	if !utils.IsValidTimeFormat(value) {
		return NewValidationError("%s must be in HH:MM format", field)
	}
	return nil
}

// deriveSlot computes the slot for a start time and duration. A caller-supplied
// end must agree with the derived one.
func deriveSlot(start, requestedEnd string, duration int) (models.TimeSlot, error) {
	end := utils.MinutesToTime(utils.TimeToMinutes(start) + duration)
	if requestedEnd != "" && requestedEnd != end {
		return models.TimeSlot{}, NewValidationError(
			"timeSlot.end does not match service duration of %d mins. Expected %s", duration, end)
	}
	return models.TimeSlot{Start: start, End: end}, nil
}

// checkSchedules verifies the salon accepts the slot on that date and the staff member works it.
func checkSchedules(salon *models.Salon, staff *models.Staff, dateStr string, date time.Time, slot models.TimeSlot) error {
	day := utils.DayOfWeek(dateStr)

	salonDay, ok := salon.WorkingHours.ForDay(day)
	if !ok || salonDay.IsClosed {
		return NewPolicyViolation("Salon is closed on %s", day)
	}
	if salon.IsHoliday(date) {
		return NewPolicyViolation("Salon is closed on this date")
	}
	if slot.Start < salonDay.Open || slot.End > salonDay.Close {
		return NewPolicyViolation("Requested time is outside salon working hours (%s - %s)", salonDay.Open, salonDay.Close)
	}

	staffDay, ok := staff.WorkingHours.ForDay(day)
	if !ok || staffDay.IsClosed {
		return NewPolicyViolation("Staff is not working on %s", day)
	}
	if slot.Start < staffDay.Open || slot.End > staffDay.Close {
		return NewPolicyViolation("Requested time is outside staff working hours (%s - %s)", staffDay.Open, staffDay.Close)
	}
	return nil
}

// lockKeys names the locks guarding a staff day and a customer day.
func lockKeys(staffID, userID string, date time.Time) []string {
	day := utils.FormatDate(date)
	return []string{
		fmt.Sprintf("staff:%s:%s", staffID, day),
		fmt.Sprintf("user:%s:%s", userID, day),
	}
}

// checkConflicts rejects slot when the staff member or the customer already holds
// an overlapping booking that day.
func (s *DefaultBookingService) checkConflicts(ctx context.Context, staffID, userID string, date time.Time, slot models.TimeSlot, excludeID string) error {
	staffBookings, err := s.Repos.Bookings.FindByStaffAndDate(ctx, staffID, date, cancelledOnly)
	if err != nil {
		return fmt.Errorf("failed to load staff bookings: %w", err)
	}
	if c := FindConflict(slot, staffBookings, excludeID); c != nil {
		metrics.IncBookingConflict("staff")
		return NewConflictError("Staff is not available at the requested time slot. Conflicts with booking %s-%s",
			c.TimeSlot.Start, c.TimeSlot.End)
	}

	userBookings, err := s.Repos.Bookings.FindByUserAndDate(ctx, userID, date, cancelledOnly)
	if err != nil {
		return fmt.Errorf("failed to load customer bookings: %w", err)
	}
	if c := FindConflict(slot, userBookings, excludeID); c != nil {
		metrics.IncBookingConflict("user")
		return NewConflictError("You already have a booking that overlaps with this time slot (%s-%s)", c.TimeSlot.Start, c.TimeSlot.End)
	}
	return nil
}

// commitGuarded runs the conflict checks and write under the staff and customer locks.
func (s *DefaultBookingService) commitGuarded(ctx context.Context, b *models.Booking, excludeID string, write func(context.Context, *models.Booking) error) error {
	unlock, err := s.Locker.Lock(ctx, lockKeys(b.StaffID, b.UserID, b.Date)...)
	if err != nil {
		return fmt.Errorf("failed to acquire booking lock: %w", err)
	}
	defer unlock()

	if err := s.checkConflicts(ctx, b.StaffID, b.UserID, b.Date, b.TimeSlot, excludeID); err != nil {
		return err
	}
	if err := write(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			metrics.IncBookingConflict("staff")
			return NewConflictError("Staff is not available at the requested time slot")
		}
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// notify hands a change event to the notifier; failures are logged only.
func (s *DefaultBookingService) notify(ctx context.Context, b *models.Booking, event models.BookingEvent) {
	if err := s.Notifier.BookingChanged(ctx, b, event); err != nil {
		metrics.IncNotificationFailed()
		s.Logger.Warn("Failed to queue booking notification",
			zap.String("bookingID", b.ID), zap.String("event", string(event)), zap.Error(err))
	}
}

// record counts an operation outcome.
func (s *DefaultBookingService) record(operation string, err error) {
	result := "ok"
	if err != nil {
		if kind := KindOf(err); kind != "" {
			result = string(kind)
		} else {
			result = "error"
			s.Logger.Error("Booking operation failed", zap.String("operation", operation), zap.Error(err))
		}
	}
	metrics.IncBookingOperation(operation, result)
}

func (s *DefaultBookingService) today() time.Time {
	return utils.TruncateToDateUTC(s.Clock.Now())
}

func (s *DefaultBookingService) loadBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repos.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil {
		return nil, NewNotFoundError("Booking not found")
	}
	return b, nil
}

func formatWindow(d time.Duration) string {
	if d%time.Hour == 0 {
		if h := int(d / time.Hour); h != 1 {
			return fmt.Sprintf("%d hours", h)
		}
		return "1 hour"
	}
	return d.String()
}
