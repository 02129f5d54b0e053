package staffRepo

import (
	"context"

	"salonbook/models"
)

// StaffRepository defines methods for staff data access.
type StaffRepository interface {
	// GetByID retrieves a staff member by ID. A missing record yields (nil, nil).
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	// ListBySalon returns the staff of a salon.
	ListBySalon(ctx context.Context, salonID string) ([]models.Staff, error)
	// ListByUser returns the staff records linked to a platform user.
	ListByUser(ctx context.Context, userID string) ([]models.Staff, error)
	// ExistsForUser reports whether userID is registered as staff of salonID.
	ExistsForUser(ctx context.Context, salonID, userID string) (bool, error)
	// Create inserts a new staff record.
	Create(ctx context.Context, staff *models.Staff) error
}
