package booking

import (
	"context"
	"time"

	bookingRepo "salonbook/database/repository/booking"
	salonRepo "salonbook/database/repository/salon"
	serviceRepo "salonbook/database/repository/service"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
	"salonbook/services/notification"
	"salonbook/utils"

	"go.uber.org/zap"
)

// BookingService is the booking surface used by the HTTP layer.
type BookingService interface {
	CreateBooking(ctx context.Context, actor models.Actor, req models.CreateBookingRequest) (*models.Booking, error)
	UpdateBooking(ctx context.Context, actor models.Actor, id string, req models.UpdateBookingRequest) (*models.Booking, error)
	RescheduleBooking(ctx context.Context, actor models.Actor, id string, req models.RescheduleRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, actor models.Actor, id string) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, actor models.Actor, id string, status models.BookingStatus) (*models.Booking, error)

	GetAvailability(ctx context.Context, staffID, serviceID, date string) (*models.StaffAvailability, error)
	CheckAvailability(ctx context.Context, req models.CheckAvailabilityRequest) (bool, error)

	GetBooking(ctx context.Context, actor models.Actor, id string) (*models.Booking, error)
	ListAllBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error)
	ListUserBookings(ctx context.Context, actor models.Actor, userID string) ([]models.Booking, error)
	ListSalonBookings(ctx context.Context, actor models.Actor, salonID string, status models.BookingStatus) ([]models.Booking, error)
	UpcomingBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error)
	PastBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error)
	TodayBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error)
	CalendarBookings(ctx context.Context, actor models.Actor, salonID, startDate, endDate string) ([]models.Booking, error)
}

// Repositories are the stores the booking service reads and writes.
type Repositories struct {
	Salons   salonRepo.SalonRepository
	Staff    staffRepo.StaffRepository
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
}

// Options tunes booking policy.
type Options struct {
	SlotInterval       int           // minutes between candidate slot starts
	CancellationWindow time.Duration // minimum notice for customer cancellations
}

// DefaultOptions returns a 30 minute slot step and a 2 hour cancellation window.
func DefaultOptions() Options {
	return Options{SlotInterval: DefaultSlotInterval, CancellationWindow: 2 * time.Hour}
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repos    Repositories
	Notifier notification.NotificationService
	Locker   Locker
	Clock    Clock
	Logger   *zap.Logger
	Options  Options
}

var _ BookingService = (*DefaultBookingService)(nil)

// NewBookingService wires a booking service. Nil collaborators get process-local defaults.
func NewBookingService(repos Repositories, notifier notification.NotificationService, locker Locker, clock Clock, opts Options) *DefaultBookingService {
	if notifier == nil {
		notifier = notification.NoopNotificationService{}
	}
	if locker == nil {
		locker = NewLocalLocker()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if opts.SlotInterval <= 0 {
		opts.SlotInterval = DefaultSlotInterval
	}
	if opts.CancellationWindow <= 0 {
		opts.CancellationWindow = DefaultOptions().CancellationWindow
	}
	return &DefaultBookingService{
		Repos:    repos,
		Notifier: notifier,
		Locker:   locker,
		Clock:    clock,
		Logger:   utils.GetLogger(),
		Options:  opts,
	}
}
