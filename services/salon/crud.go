package salon

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"salonbook/models"
	"salonbook/services/booking"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultCatalogService) CreateSalon(ctx context.Context, actor models.Actor, req models.CreateSalonRequest) (*models.Salon, error) {
	if actor.Role != models.RoleSalonOwner && actor.Role != models.RoleSuperAdmin {
		return nil, booking.NewForbiddenError("Only salon owners can create salons")
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
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	now := s.Clock.Now()
	salon := &models.Salon{
		ID:           uuid.New().String(),
		OwnerID:      actor.UserID,
		Name:         name,
		Address:      strings.TrimSpace(req.Address),
		Phone:        strings.TrimSpace(req.Phone),
		IsAvailable:  available,
		WorkingHours: hours,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Salons.Create(ctx, salon); err != nil {
		return nil, fmt.Errorf("failed to create salon: %w", err)
	}
	s.Logger.Info("Salon created", zap.String("salonID", salon.ID), zap.String("ownerID", salon.OwnerID))
	return salon, nil
}

func (s *DefaultCatalogService) GetSalon(ctx context.Context, id string) (*models.Salon, error) {
	salon, err := s.Salons.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load salon: %w", err)
	}
	if salon == nil {
		return nil, booking.NewNotFoundError("Salon not found")
	}
	return salon, nil
}

func (s *DefaultCatalogService) ListSalons(ctx context.Context) ([]models.Salon, error) {
	salons, err := s.Salons.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salons: %w", err)
	}
	if salons == nil {
		salons = []models.Salon{}
	}
	return salons, nil
}

// managedSalon loads a salon and checks that actor may change it.
func (s *DefaultCatalogService) managedSalon(ctx context.Context, actor models.Actor, id string) (*models.Salon, error) {
	salon, err := s.GetSalon(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleSuperAdmin {
		return salon, nil
	}
	if actor.Role != models.RoleSalonOwner || salon.OwnerID != actor.UserID {
		return nil, booking.NewForbiddenError("You do not have permission to manage this salon")
	}
	return salon, nil
}

func (s *DefaultCatalogService) UpdateWorkingHours(ctx context.Context, actor models.Actor, id string, hours models.WorkingHours) (*models.Salon, error) {
	salon, err := s.managedSalon(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := validateWorkingHours(hours); err != nil {
		return nil, err
	}
	if err := s.Salons.UpdateWorkingHours(ctx, id, hours); err != nil {
		return nil, fmt.Errorf("failed to update working hours: %w", err)
	}
	salon.WorkingHours = hours
	return salon, nil
}

func (s *DefaultCatalogService) UpdateHolidays(ctx context.Context, actor models.Actor, id string, req models.UpdateHolidaysRequest) (*models.Salon, error) {
	salon, err := s.managedSalon(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(req.Holidays))
	holidays := make([]time.Time, 0, len(req.Holidays))
	for _, d := range req.Holidays {
		if !utils.IsValidDateFormat(d) {
			return nil, booking.NewValidationError("holiday %q must be in YYYY-MM-DD format", d)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		holidays = append(holidays, utils.ParseDateUTC(d))
	}
	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Before(holidays[j]) })

	if err := s.Salons.UpdateHolidays(ctx, id, holidays); err != nil {
		return nil, fmt.Errorf("failed to update holidays: %w", err)
	}
	salon.Holidays = holidays
	return salon, nil
}
