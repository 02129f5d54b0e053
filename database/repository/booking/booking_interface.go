package bookingRepo

import (
	"context"
	"errors"
	"time"

	"salonbook/models"
)

// ErrSlotTaken is returned when a write would double-book a staff member.
var ErrSlotTaken = errors.New("time slot already taken")

// ActiveStatuses are the statuses that hold a staff member's time.
var ActiveStatuses = []models.BookingStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusCompleted,
	models.StatusNoShow,
}

// TerminalStatuses have no outgoing transitions.
var TerminalStatuses = []models.BookingStatus{
	models.StatusCompleted,
	models.StatusCancelled,
	models.StatusNoShow,
}

// Filter narrows a booking listing. Zero-valued fields do not filter.
type Filter struct {
	UserID          string
	SalonIDs        []string
	StaffIDs        []string
	DateFrom        *time.Time // inclusive
	DateTo          *time.Time // exclusive
	Statuses        []models.BookingStatus
	ExcludeStatuses []models.BookingStatus
	// PastAsOf keeps bookings dated before it or already in a terminal status.
	PastAsOf   *time.Time
	Descending bool
	Limit      int64
}

// BookingRepository defines booking persistence.
type BookingRepository interface {
	// GetByID retrieves a booking by ID. A missing booking yields (nil, nil).
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// FindByStaffAndDate returns the staff member's bookings on date, minus excluded statuses.
	FindByStaffAndDate(ctx context.Context, staffID string, date time.Time, exclude []models.BookingStatus) ([]models.Booking, error)
	// FindByUserAndDate returns the customer's bookings on date, minus excluded statuses.
	FindByUserAndDate(ctx context.Context, userID string, date time.Time, exclude []models.BookingStatus) ([]models.Booking, error)
	// Create inserts a booking, failing with ErrSlotTaken on a staff overlap.
	Create(ctx context.Context, booking *models.Booking) error
	// Update replaces a booking, failing with ErrSlotTaken on a staff overlap.
	Update(ctx context.Context, booking *models.Booking) error
	// List returns bookings matching f ordered by date then start time.
	List(ctx context.Context, f Filter) ([]models.Booking, error)
}

// HoldsTime reports whether a booking in status s blocks its slot.
func HoldsTime(s models.BookingStatus) bool {
	return s != models.StatusCancelled
}
