package salon

import (
	"context"
	"fmt"
	"strings"

	"salonbook/models"
	"salonbook/services/booking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultCatalogService) AddStaff(ctx context.Context, actor models.Actor, salonID string, req models.CreateStaffRequest) (*models.Staff, error) {
	if _, err := s.managedSalon(ctx, actor, salonID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, booking.NewValidationError("name is required")
	}
	hours := models.DefaultWorkingHours()
	if req.WorkingHours != nil {
		if err := validateWorkingHours(*req.WorkingHours); err != nil {
			return nil, err
		}
		hours = *req.WorkingHours
	}

	now := s.Clock.Now()
	staff := &models.Staff{
		ID:           uuid.New().String(),
		SalonID:      salonID,
		UserID:       req.UserID,
		Name:         name,
		Specialties:  req.Specialties,
		WorkingHours: hours,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Staff.Create(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}
	s.Logger.Info("Staff added", zap.String("salonID", salonID), zap.String("staffID", staff.ID))
	return staff, nil
}

func (s *DefaultCatalogService) ListStaff(ctx context.Context, salonID string) ([]models.Staff, error) {
	if _, err := s.GetSalon(ctx, salonID); err != nil {
		return nil, err
	}
	staff, err := s.Staff.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	if staff == nil {
		staff = []models.Staff{}
	}
	return staff, nil
}

func (s *DefaultCatalogService) AddService(ctx context.Context, actor models.Actor, salonID string, req models.CreateServiceRequest) (*models.Service, error) {
	if _, err := s.managedSalon(ctx, actor, salonID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, booking.NewValidationError("name is required")
	}
	if req.Duration <= 0 {
		return nil, booking.NewValidationError("duration must be a positive number of minutes")
	}
	if req.Price < 0 {
		return nil, booking.NewValidationError("price cannot be negative")
	}

	now := s.Clock.Now()
	svc := &models.Service{
		ID:          uuid.New().String(),
		SalonID:     salonID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Duration:    req.Duration,
		Price:       req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	s.Logger.Info("Service added", zap.String("salonID", salonID), zap.String("serviceID", svc.ID))
	return svc, nil
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, salonID string) ([]models.Service, error) {
	if _, err := s.GetSalon(ctx, salonID); err != nil {
		return nil, err
	}
	services, err := s.Services.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, nil
}
