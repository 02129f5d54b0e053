package booking

import (
	"context"
	"fmt"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/utils"
)

// GetBooking returns a booking visible to actor.
func (s *DefaultBookingService) GetBooking(ctx context.Context, actor models.Actor, id string) (*models.Booking, error) {
	b, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.canView(ctx, actor, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *DefaultBookingService) list(ctx context.Context, f bookingRepo.Filter) ([]models.Booking, error) {
	out, err := s.Repos.Bookings.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if out == nil {
		out = []models.Booking{}
	}
	return out, nil
}

// ListAllBookings returns every booking. Super admins only.
func (s *DefaultBookingService) ListAllBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error) {
	if actor.Role != models.RoleSuperAdmin {
		return nil, NewForbiddenError("Only super admins can list all bookings")
	}
	return s.list(ctx, bookingRepo.Filter{Descending: true})
}

// ListUserBookings returns a customer's bookings, newest first.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, actor models.Actor, userID string) ([]models.Booking, error) {
	if userID != actor.UserID && actor.Role != models.RoleSuperAdmin {
		return nil, NewForbiddenError("You can only view your own bookings")
	}
	return s.list(ctx, bookingRepo.Filter{UserID: userID, Descending: true})
}

// ListSalonBookings returns a salon's bookings, optionally restricted to one status.
func (s *DefaultBookingService) ListSalonBookings(ctx context.Context, actor models.Actor, salonID string, status models.BookingStatus) ([]models.Booking, error) {
	if status != "" && !IsValidStatus(status) {
		return nil, NewValidationError("Invalid status filter: %s", status)
	}
	if err := s.canAccessSalon(ctx, actor, salonID); err != nil {
		return nil, err
	}
	f := bookingRepo.Filter{SalonIDs: []string{salonID}, Descending: true}
	if status != "" {
		f.Statuses = []models.BookingStatus{status}
	}
	return s.list(ctx, f)
}

// UpcomingBookings returns the actor's open bookings from today on, soonest first.
func (s *DefaultBookingService) UpcomingBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error) {
	f, ok, err := s.scopeFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Booking{}, nil
	}
	today := s.today()
	f.DateFrom = &today
	f.Statuses = []models.BookingStatus{models.StatusPending, models.StatusConfirmed}
	return s.list(ctx, f)
}

// PastBookings returns the actor's bookings dated before today or already closed, newest first.
func (s *DefaultBookingService) PastBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error) {
	f, ok, err := s.scopeFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Booking{}, nil
	}
	today := s.today()
	f.PastAsOf = &today
	f.Descending = true
	return s.list(ctx, f)
}

// TodayBookings returns today's non-cancelled bookings for salon owners, staff and super admins.
func (s *DefaultBookingService) TodayBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error) {
	if !actor.IsPrivileged() {
		return nil, NewForbiddenError("Only salon staff can view today's bookings")
	}
	f, ok, err := s.scopeFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Booking{}, nil
	}
	today := s.today()
	tomorrow := today.AddDate(0, 0, 1)
	f.DateFrom = &today
	f.DateTo = &tomorrow
	f.ExcludeStatuses = cancelledOnly
	return s.list(ctx, f)
}

// CalendarBookings returns a salon's non-cancelled bookings between two dates inclusive.
// Staff see only their own column.
func (s *DefaultBookingService) CalendarBookings(ctx context.Context, actor models.Actor, salonID, startDate, endDate string) ([]models.Booking, error) {
	if startDate == "" || endDate == "" {
		return nil, NewValidationError("startDate and endDate query params are required")
	}
	if err := validateDate("startDate", startDate); err != nil {
		return nil, err
	}
	if err := validateDate("endDate", endDate); err != nil {
		return nil, err
	}
	from := utils.ParseDateUTC(startDate)
	to := utils.ParseDateUTC(endDate)
	if to.Before(from) {
		return nil, NewValidationError("endDate must not be before startDate")
	}
	if err := s.canAccessSalon(ctx, actor, salonID); err != nil {
		return nil, err
	}

	until := to.AddDate(0, 0, 1)
	f := bookingRepo.Filter{
		SalonIDs:        []string{salonID},
		DateFrom:        &from,
		DateTo:          &until,
		ExcludeStatuses: cancelledOnly,
	}
	if actor.Role == models.RoleStaff {
		records, err := s.Repos.Staff.ListByUser(ctx, actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load staff records: %w", err)
		}
		for _, st := range records {
			if st.SalonID == salonID {
				f.StaffIDs = append(f.StaffIDs, st.ID)
			}
		}
	}
	return s.list(ctx, f)
}
