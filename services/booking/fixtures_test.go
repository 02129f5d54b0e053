package booking

import (
	"context"
	"testing"
	"time"

	memoryRepo "salonbook/database/repository/memory"
	"salonbook/models"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// 2030-01-07 is a Monday.
var (
	testDay     = "2030-01-07"
	testNow     = time.Date(2030, 1, 7, 8, 0, 0, 0, time.UTC)
	customer    = models.Actor{UserID: "cust1", Role: models.RoleCustomer}
	otherUser   = models.Actor{UserID: "cust2", Role: models.RoleCustomer}
	owner       = models.Actor{UserID: "owner1", Role: models.RoleSalonOwner}
	staffMember = models.Actor{UserID: "staffuser1", Role: models.RoleStaff}
	admin       = models.Actor{UserID: "admin1", Role: models.RoleSuperAdmin}
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) BookingChanged(ctx context.Context, b *models.Booking, event models.BookingEvent) error {
	args := m.Called(ctx, b, event)
	return args.Error(0)
}

type fixture struct {
	svc      *DefaultBookingService
	stores   *memoryRepo.Stores
	notifier *mockNotifier
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	ctx := context.Background()
	stores := memoryRepo.NewStores()

	require.NoError(t, stores.Salons.Create(ctx, &models.Salon{
		ID: "salon1", OwnerID: "owner1", Name: "Main Street", IsAvailable: true,
		WorkingHours: models.DefaultWorkingHours(),
	}))
	require.NoError(t, stores.Salons.Create(ctx, &models.Salon{
		ID: "salon2", OwnerID: "owner2", Name: "Other", IsAvailable: true,
		WorkingHours: models.DefaultWorkingHours(),
	}))
	require.NoError(t, stores.Staff.Create(ctx, &models.Staff{
		ID: "staff1", SalonID: "salon1", UserID: "staffuser1", Name: "Ana",
		WorkingHours: models.DefaultWorkingHours(),
	}))
	require.NoError(t, stores.Staff.Create(ctx, &models.Staff{
		ID: "staff2", SalonID: "salon1", Name: "Ben",
		WorkingHours: models.DefaultWorkingHours(),
	}))
	require.NoError(t, stores.Staff.Create(ctx, &models.Staff{
		ID: "staff3", SalonID: "salon2", Name: "Cy",
		WorkingHours: models.DefaultWorkingHours(),
	}))
	require.NoError(t, stores.Services.Create(ctx, &models.Service{ID: "cut", SalonID: "salon1", Name: "Cut", Duration: 60, Price: 50}))
	require.NoError(t, stores.Services.Create(ctx, &models.Service{ID: "trim", SalonID: "salon1", Name: "Trim", Duration: 30, Price: 20}))
	require.NoError(t, stores.Services.Create(ctx, &models.Service{ID: "color", SalonID: "salon2", Name: "Color", Duration: 90, Price: 80}))

	notifier := &mockNotifier{}
	notifier.On("BookingChanged", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewBookingService(Repositories{
		Salons:   stores.Salons,
		Staff:    stores.Staff,
		Services: stores.Services,
		Bookings: stores.Bookings,
	}, notifier, NewLocalLocker(), FixedClock(now), DefaultOptions())
	svc.Logger = zap.NewNop()

	return &fixture{svc: svc, stores: stores, notifier: notifier}
}

func createReq(staffID, serviceID, date, start string) models.CreateBookingRequest {
	return models.CreateBookingRequest{
		SalonID:   "salon1",
		StaffID:   staffID,
		ServiceID: serviceID,
		Date:      date,
		TimeSlot:  models.BookingTimeSlotInput{Start: start},
	}
}

func (f *fixture) mustCreate(t *testing.T, actor models.Actor, req models.CreateBookingRequest) *models.Booking {
	t.Helper()
	b, err := f.svc.CreateBooking(context.Background(), actor, req)
	require.NoError(t, err)
	return b
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), "unexpected error: %v", err)
}
