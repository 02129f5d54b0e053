package salonRepo

import (
	"context"
	"time"

	"salonbook/models"
)

// SalonRepository defines methods for salon data access.
type SalonRepository interface {
	// GetByID retrieves a salon by its unique ID. A missing salon yields (nil, nil).
	GetByID(ctx context.Context, id string) (*models.Salon, error)
	// ListByOwner returns every salon owned by ownerID.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Salon, error)
	// List returns all salons.
	List(ctx context.Context) ([]models.Salon, error)
	// Create inserts a new salon record.
	Create(ctx context.Context, salon *models.Salon) error
	// UpdateWorkingHours replaces the weekly schedule of a salon.
	UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error
	// UpdateHolidays replaces the holiday calendar of a salon.
	UpdateHolidays(ctx context.Context, id string, holidays []time.Time) error
}
