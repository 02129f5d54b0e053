package booking

import (
	"context"
	"fmt"

	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

// CancelBooking cancels a booking. Customers must cancel before the cancellation window.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, actor models.Actor, id string) (*models.Booking, error) {
	b, err := s.cancelBooking(ctx, actor, id)
	s.record("cancel", err)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Booking cancelled", zap.String("bookingID", b.ID), zap.String("by", actor.UserID))
	s.notify(ctx, b, models.EventBookingCancelled)
	return b, nil
}

func (s *DefaultBookingService) cancelBooking(ctx context.Context, actor models.Actor, id string) (*models.Booking, error) {
	b, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.canModify(ctx, actor, b); err != nil {
		return nil, err
	}
	switch b.Status {
	case models.StatusCancelled:
		return nil, NewPolicyViolation("Booking is already cancelled")
	case models.StatusCompleted:
		return nil, NewPolicyViolation("Cannot cancel a completed booking")
	case models.StatusNoShow:
		return nil, NewPolicyViolation("Cannot cancel a no-show booking")
	}

	now := s.Clock.Now()
	if actor.Role == models.RoleCustomer {
		window := s.Options.CancellationWindow
		if utils.SlotInstant(b.Date, b.TimeSlot.Start).Sub(now) < window {
			return nil, NewPolicyViolation("Bookings can only be cancelled at least %s before the appointment", formatWindow(window))
		}
	}

	updated := *b
	if err := ApplyTransition(&updated, models.StatusCancelled, now); err != nil {
		return nil, err
	}
	if err := s.Repos.Bookings.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	return &updated, nil
}

// UpdateBookingStatus drives a booking through the lifecycle on behalf of its salon.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, actor models.Actor, id string, status models.BookingStatus) (*models.Booking, error) {
	b, err := s.updateBookingStatus(ctx, actor, id, status)
	s.record("status", err)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Booking status changed", zap.String("bookingID", b.ID), zap.String("status", string(b.Status)))
	s.notify(ctx, b, models.EventBookingStatus)
	return b, nil
}

func (s *DefaultBookingService) updateBookingStatus(ctx context.Context, actor models.Actor, id string, status models.BookingStatus) (*models.Booking, error) {
	settable := false
	for _, st := range settableStatuses {
		if st == status {
			settable = true
			break
		}
	}
	if !settable {
		return nil, NewValidationError("Invalid status. Must be one of: confirmed, cancelled, completed, no_show")
	}

	b, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.canManage(ctx, actor, b); err != nil {
		return nil, err
	}

	updated := *b
	if err := ApplyTransition(&updated, status, s.Clock.Now()); err != nil {
		return nil, err
	}
	if err := s.Repos.Bookings.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	return &updated, nil
}
