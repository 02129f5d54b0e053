package serviceRepo

import (
	"context"

	"salonbook/models"
)

// ServiceRepository defines methods for salon service data access.
type ServiceRepository interface {
	// GetByID retrieves a service by ID. A missing record yields (nil, nil).
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// ListBySalon returns the services offered by a salon.
	ListBySalon(ctx context.Context, salonID string) ([]models.Service, error)
	// Create inserts a new service record.
	Create(ctx context.Context, service *models.Service) error
}
