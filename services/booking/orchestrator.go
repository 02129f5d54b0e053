package booking

import (
	"context"
	"fmt"

	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// catalogue holds the entities a booking refers to.
type catalogue struct {
	salon   *models.Salon
	staff   *models.Staff
	service *models.Service
}

// loadCatalogue fetches salon, staff and service concurrently. Missing entities stay nil.
func (s *DefaultBookingService) loadCatalogue(ctx context.Context, salonID, staffID, serviceID string) (catalogue, error) {
	var c catalogue
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		salon, err := s.Repos.Salons.GetByID(gctx, salonID)
		if err != nil {
			return fmt.Errorf("failed to load salon: %w", err)
		}
		c.salon = salon
		return nil
	})
	g.Go(func() error {
		staff, err := s.Repos.Staff.GetByID(gctx, staffID)
		if err != nil {
			return fmt.Errorf("failed to load staff: %w", err)
		}
		c.staff = staff
		return nil
	})
	g.Go(func() error {
		svc, err := s.Repos.Services.GetByID(gctx, serviceID)
		if err != nil {
			return fmt.Errorf("failed to load service: %w", err)
		}
		c.service = svc
		return nil
	})
	if err := g.Wait(); err != nil {
		return catalogue{}, err
	}
	return c, nil
}

// CreateBooking validates a request against the catalogue, the schedules and
// existing bookings, then persists it as pending.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, actor models.Actor, req models.CreateBookingRequest) (*models.Booking, error) {
	b, err := s.createBooking(ctx, actor, req)
	s.record("create", err)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Booking created",
		zap.String("bookingID", b.ID), zap.String("staffID", b.StaffID),
		zap.String("date", utils.FormatDate(b.Date)), zap.String("start", b.TimeSlot.Start))
	s.notify(ctx, b, models.EventBookingCreated)
	return b, nil
}

func (s *DefaultBookingService) createBooking(ctx context.Context, actor models.Actor, req models.CreateBookingRequest) (*models.Booking, error) {
	if actor.UserID == "" {
		return nil, NewValidationError("userId is required")
	}
	if req.SalonID == "" || req.StaffID == "" || req.ServiceID == "" || req.Date == "" || req.TimeSlot.Start == "" {
		return nil, NewValidationError("salonId, staffId, serviceId, date, and timeSlot.start are required")
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
	notes, err := normalizeNotes(req.Notes)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	date := utils.ParseDateUTC(req.Date)
	today := utils.TruncateToDateUTC(now)
	if date.Before(today) {
		return nil, NewPolicyViolation("Booking date cannot be in the past")
	}
	if date.Equal(today) && utils.TimeToMinutes(req.TimeSlot.Start) < utils.MinutesOfDayUTC(now) {
		return nil, NewPolicyViolation("Booking time cannot be in the past")
	}

	c, err := s.loadCatalogue(ctx, req.SalonID, req.StaffID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if c.salon == nil {
		return nil, NewNotFoundError("Salon not found")
	}
	if !c.salon.IsAvailable {
		return nil, NewPolicyViolation("Salon is not accepting bookings")
	}
	if c.service == nil {
		return nil, NewNotFoundError("Service not found")
	}
	if c.service.SalonID != c.salon.ID {
		return nil, NewNotFoundError("Service does not belong to this salon")
	}
	if c.staff == nil {
		return nil, NewNotFoundError("Staff not found")
	}
	if c.staff.SalonID != c.salon.ID {
		return nil, NewNotFoundError("Staff does not belong to this salon")
	}

	slot, err := deriveSlot(req.TimeSlot.Start, req.TimeSlot.End, c.service.Duration)
	if err != nil {
		return nil, err
	}
	if err := checkSchedules(c.salon, c.staff, req.Date, date, slot); err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:        uuid.New().String(),
		UserID:    actor.UserID,
		SalonID:   c.salon.ID,
		StaffID:   c.staff.ID,
		ServiceID: c.service.ID,
		Date:      date,
		TimeSlot:  slot,
		Status:    models.StatusPending,
		Price:     c.service.Price,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.commitGuarded(ctx, b, "", s.Repos.Bookings.Create); err != nil {
		return nil, err
	}
	return b, nil
}
