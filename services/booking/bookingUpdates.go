package booking

import (
	"context"

	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

// UpdateBooking applies any subset of staff, service, date, start and notes to an
// open booking, re-validates the result and returns it to pending.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, actor models.Actor, id string, req models.UpdateBookingRequest) (*models.Booking, error) {
	b, err := s.updateBooking(ctx, actor, id, req)
	s.record("update", err)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Booking updated", zap.String("bookingID", b.ID))
	s.notify(ctx, b, models.EventBookingUpdated)
	return b, nil
}

func (s *DefaultBookingService) updateBooking(ctx context.Context, actor models.Actor, id string, req models.UpdateBookingRequest) (*models.Booking, error) {
	if req.IsEmpty() {
		return nil, NewValidationError("Nothing to update. Provide at least one field to change")
	}
	if req.Date != nil {
		if err := validateDate("date", *req.Date); err != nil {
			return nil, err
		}
	}
	if req.TimeSlot != nil {
		if req.TimeSlot.Start != "" {
			if err := validateTime("timeSlot.start", req.TimeSlot.Start); err != nil {
				return nil, err
			}
		}
		if req.TimeSlot.End != "" {
			if err := validateTime("timeSlot.end", req.TimeSlot.End); err != nil {
				return nil, err
			}
		}
	}
	var notes *string
	if req.Notes != nil {
		n, err := normalizeNotes(*req.Notes)
		if err != nil {
			return nil, err
		}
		notes = &n
	}

	b, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.canModify(ctx, actor, b); err != nil {
		return nil, err
	}
	if IsTerminal(b.Status) {
		return nil, NewPolicyViolation("Cannot update a booking that is already %s", b.Status)
	}

	staffID, serviceID := b.StaffID, b.ServiceID
	if req.StaffID != nil && *req.StaffID != "" {
		staffID = *req.StaffID
	}
	if req.ServiceID != nil && *req.ServiceID != "" {
		serviceID = *req.ServiceID
	}
	dateStr := utils.FormatDate(b.Date)
	if req.Date != nil && *req.Date != "" {
		dateStr = *req.Date
	}
	start, end := b.TimeSlot.Start, ""
	if req.TimeSlot != nil {
		if req.TimeSlot.Start != "" {
			start = req.TimeSlot.Start
		}
		end = req.TimeSlot.End
	}

	now := s.Clock.Now()
	date := utils.ParseDateUTC(dateStr)
	if date.Before(utils.TruncateToDateUTC(now)) {
		return nil, NewPolicyViolation("Booking date cannot be in the past")
	}

	c, err := s.loadCatalogue(ctx, b.SalonID, staffID, serviceID)
	if err != nil {
		return nil, err
	}
	if c.salon == nil {
		return nil, NewNotFoundError("Salon not found")
	}
	if c.service == nil {
		return nil, NewNotFoundError("Service not found")
	}
	if serviceID != b.ServiceID && c.service.SalonID != b.SalonID {
		return nil, NewNotFoundError("New service does not belong to the same salon")
	}
	if c.staff == nil {
		return nil, NewNotFoundError("Staff not found")
	}
	if staffID != b.StaffID && c.staff.SalonID != b.SalonID {
		return nil, NewNotFoundError("New staff does not belong to the same salon")
	}

	slot, err := deriveSlot(start, end, c.service.Duration)
	if err != nil {
		return nil, err
	}
	if err := checkSchedules(c.salon, c.staff, dateStr, date, slot); err != nil {
		return nil, err
	}

	updated := *b
	updated.StaffID = staffID
	updated.ServiceID = serviceID
	updated.Date = date
	updated.TimeSlot = slot
	updated.Price = c.service.Price
	if notes != nil {
		updated.Notes = *notes
	}
	resetToPending(&updated, now)

	if err := s.commitGuarded(ctx, &updated, b.ID, s.Repos.Bookings.Update); err != nil {
		return nil, err
	}
	return &updated, nil
}

// RescheduleBooking moves an open booking to a new date and start time with the
// same staff member and service, and returns it to pending.
func (s *DefaultBookingService) RescheduleBooking(ctx context.Context, actor models.Actor, id string, req models.RescheduleRequest) (*models.Booking, error) {
	b, err := s.rescheduleBooking(ctx, actor, id, req)
	s.record("reschedule", err)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Booking rescheduled",
		zap.String("bookingID", b.ID), zap.String("date", utils.FormatDate(b.Date)), zap.String("start", b.TimeSlot.Start))
	s.notify(ctx, b, models.EventBookingRescheduled)
	return b, nil
}

func (s *DefaultBookingService) rescheduleBooking(ctx context.Context, actor models.Actor, id string, req models.RescheduleRequest) (*models.Booking, error) {
	if req.Date == "" || req.TimeSlot.Start == "" {
		return nil, NewValidationError("date and timeSlot.start are required to reschedule")
	}
	if err := validateDate("date", req.Date); err != nil {
		return nil, err
	}
	if err := validateTime("timeSlot.start", req.TimeSlot.Start); err != nil {
		return nil, err
	}
	if req.TimeSlot.End != "" {
		if err := validateTime("timeSlot.end", req.TimeSlot.End); err != nil {
			return nil, err
		}
	}

	b, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.canModify(ctx, actor, b); err != nil {
		return nil, err
	}
	if IsTerminal(b.Status) {
		return nil, NewPolicyViolation("Cannot reschedule a booking that is already %s", b.Status)
	}

	now := s.Clock.Now()
	date := utils.ParseDateUTC(req.Date)
	if date.Before(utils.TruncateToDateUTC(now)) {
		return nil, NewPolicyViolation("Reschedule date cannot be in the past")
	}
	if date.Equal(b.Date) && req.TimeSlot.Start == b.TimeSlot.Start {
		return nil, NewValidationError("New date and time are the same as the current booking")
	}

	c, err := s.loadCatalogue(ctx, b.SalonID, b.StaffID, b.ServiceID)
	if err != nil {
		return nil, err
	}
	if c.salon == nil {
		return nil, NewNotFoundError("Salon not found")
	}
	if c.service == nil {
		return nil, NewNotFoundError("Service not found")
	}
	if c.staff == nil {
		return nil, NewNotFoundError("Staff not found")
	}

	slot, err := deriveSlot(req.TimeSlot.Start, req.TimeSlot.End, c.service.Duration)
	if err != nil {
		return nil, err
	}
	if err := checkSchedules(c.salon, c.staff, req.Date, date, slot); err != nil {
		return nil, err
	}

	updated := *b
	updated.Date = date
	updated.TimeSlot = slot
	resetToPending(&updated, now)

	if err := s.commitGuarded(ctx, &updated, b.ID, s.Repos.Bookings.Update); err != nil {
		return nil, err
	}
	return &updated, nil
}
