package booking

import (
	"context"
	"fmt"

	"salonbook/metrics"
	"salonbook/models"
	"salonbook/utils"

	"golang.org/x/sync/errgroup"
)

// GetAvailability lists the start times at which staffID can take serviceID on date.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, staffID, serviceID, date string) (*models.StaffAvailability, error) {
	out, err := s.getAvailability(ctx, staffID, serviceID, date)
	s.record("availability", err)
	if err != nil {
		return nil, err
	}
	metrics.ObserveAvailabilitySlots(len(out.Slots))
	return out, nil
}

func (s *DefaultBookingService) getAvailability(ctx context.Context, staffID, serviceID, dateStr string) (*models.StaffAvailability, error) {
	if dateStr == "" || serviceID == "" {
		return nil, NewValidationError("date and serviceId are required")
	}
	if err := validateDate("date", dateStr); err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	date := utils.ParseDateUTC(dateStr)
	today := utils.TruncateToDateUTC(now)
	if date.Before(today) {
		return nil, NewPolicyViolation("Cannot check availability for a past date")
	}

	var (
		staff *models.Staff
		svc   *models.Service
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if staff, err = s.Repos.Staff.GetByID(gctx, staffID); err != nil {
			return fmt.Errorf("failed to load staff: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if svc, err = s.Repos.Services.GetByID(gctx, serviceID); err != nil {
			return fmt.Errorf("failed to load service: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, NewNotFoundError("Staff not found")
	}
	if svc == nil {
		return nil, NewNotFoundError("Service not found")
	}
	if svc.SalonID != staff.SalonID {
		return nil, NewNotFoundError("Service does not belong to this salon")
	}
	salon, err := s.Repos.Salons.GetByID(ctx, staff.SalonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load salon: %w", err)
	}
	if salon == nil {
		return nil, NewNotFoundError("Salon not found")
	}

	out := &models.StaffAvailability{
		Date:      dateStr,
		StaffID:   staff.ID,
		ServiceID: svc.ID,
		Duration:  svc.Duration,
		Slots:     []string{},
	}

	day := utils.DayOfWeek(dateStr)
	salonDay, ok := salon.WorkingHours.ForDay(day)
	if !ok || salon.IsHoliday(date) {
		return out, nil
	}
	staffDay, ok := staff.WorkingHours.ForDay(day)
	if !ok {
		return out, nil
	}
	schedule := EffectiveSchedule(salonDay, staffDay)
	if schedule.IsClosed {
		return out, nil
	}

	existing, err := s.Repos.Bookings.FindByStaffAndDate(ctx, staff.ID, date, cancelledOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff bookings: %w", err)
	}
	busy := make([]models.TimeSlot, 0, len(existing))
	for _, b := range existing {
		busy = append(busy, b.TimeSlot)
	}

	var nowMinutes *int
	if date.Equal(today) {
		m := utils.MinutesOfDayUTC(now)
		nowMinutes = &m
	}
	out.Slots = ComputeSlots(schedule, busy, svc.Duration, s.Options.SlotInterval, nowMinutes)
	return out, nil
}

// CheckAvailability reports whether the staff member is free for the given slot.
// A missing end probes one slot interval.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, req models.CheckAvailabilityRequest) (bool, error) {
	ok, err := s.checkAvailability(ctx, req)
	s.record("check_availability", err)
	return ok, err
}

func (s *DefaultBookingService) checkAvailability(ctx context.Context, req models.CheckAvailabilityRequest) (bool, error) {
	if req.SalonID == "" || req.StaffID == "" || req.Date == "" || req.TimeSlot.Start == "" {
		return false, NewValidationError("salonId, staffId, date and timeSlot.start are required")
	}
	if err := validateDate("date", req.Date); err != nil {
		return false, err
	}
	if err := validateTime("timeSlot.start", req.TimeSlot.Start); err != nil {
		return false, err
	}
	end := req.TimeSlot.End
	if end == "" {
		end = utils.MinutesToTime(utils.TimeToMinutes(req.TimeSlot.Start) + s.Options.SlotInterval)
	} else if err := validateTime("timeSlot.end", end); err != nil {
		return false, err
	}
	if end <= req.TimeSlot.Start {
		return false, NewValidationError("timeSlot.end must be after timeSlot.start")
	}

	existing, err := s.Repos.Bookings.FindByStaffAndDate(ctx, req.StaffID, utils.ParseDateUTC(req.Date), cancelledOnly)
	if err != nil {
		return false, fmt.Errorf("failed to load staff bookings: %w", err)
	}
	return !HasConflict(models.TimeSlot{Start: req.TimeSlot.Start, End: end}, existing, ""), nil
}
