package salon

import (
	"context"

	salonRepo "salonbook/database/repository/salon"
	serviceRepo "salonbook/database/repository/service"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
	"salonbook/services/booking"
	"salonbook/utils"

	"go.uber.org/zap"
)

// CatalogService manages salons and what they offer.
type CatalogService interface {
	CreateSalon(ctx context.Context, actor models.Actor, req models.CreateSalonRequest) (*models.Salon, error)
	GetSalon(ctx context.Context, id string) (*models.Salon, error)
	ListSalons(ctx context.Context) ([]models.Salon, error)
	UpdateWorkingHours(ctx context.Context, actor models.Actor, id string, hours models.WorkingHours) (*models.Salon, error)
	UpdateHolidays(ctx context.Context, actor models.Actor, id string, req models.UpdateHolidaysRequest) (*models.Salon, error)

	AddStaff(ctx context.Context, actor models.Actor, salonID string, req models.CreateStaffRequest) (*models.Staff, error)
	ListStaff(ctx context.Context, salonID string) ([]models.Staff, error)
	AddService(ctx context.Context, actor models.Actor, salonID string, req models.CreateServiceRequest) (*models.Service, error)
	ListServices(ctx context.Context, salonID string) ([]models.Service, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Salons   salonRepo.SalonRepository
	Staff    staffRepo.StaffRepository
	Services serviceRepo.ServiceRepository
	Clock    booking.Clock
	Logger   *zap.Logger
}

var _ CatalogService = (*DefaultCatalogService)(nil)

func NewCatalogService(salons salonRepo.SalonRepository, staff staffRepo.StaffRepository, services serviceRepo.ServiceRepository) *DefaultCatalogService {
	return &DefaultCatalogService{
		Salons:   salons,
		Staff:    staff,
		Services: services,
		Clock:    booking.SystemClock{},
		Logger:   utils.GetLogger(),
	}
}
