package booking

import (
	"context"
	"testing"
	"time"

	"salonbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailabilityHalfOpenBusy(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()
	f.mustCreate(t, otherUser, createReq("staff1", "cut", "2030-01-08", "10:00"))

	got, err := f.svc.GetAvailability(ctx, "staff1", "trim", "2030-01-08")
	require.NoError(t, err)

	assert.Equal(t, 30, got.Duration)
	assert.Contains(t, got.Slots, "09:00")
	assert.Contains(t, got.Slots, "09:30")
	assert.NotContains(t, got.Slots, "10:00")
	assert.NotContains(t, got.Slots, "10:30")
	assert.Contains(t, got.Slots, "11:00")
	assert.Equal(t, "17:30", got.Slots[len(got.Slots)-1])
	assert.Len(t, got.Slots, 16)
}

func TestGetAvailabilityToday(t *testing.T) {
	f := newFixture(t, time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC))

	got, err := f.svc.GetAvailability(context.Background(), "staff1", "cut", testDay)
	require.NoError(t, err)
	require.NotEmpty(t, got.Slots)
	assert.Equal(t, "10:00", got.Slots[0])
	assert.Equal(t, "17:00", got.Slots[len(got.Slots)-1])
}

func TestGetAvailabilityClosedDays(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()

	got, err := f.svc.GetAvailability(ctx, "staff1", "cut", "2030-01-13")
	require.NoError(t, err)
	assert.Empty(t, got.Slots)

	require.NoError(t, f.stores.Salons.UpdateHolidays(ctx, "salon1", []time.Time{time.Date(2030, 1, 9, 0, 0, 0, 0, time.UTC)}))
	got, err = f.svc.GetAvailability(ctx, "staff1", "cut", "2030-01-09")
	require.NoError(t, err)
	assert.Empty(t, got.Slots)
}

func TestGetAvailabilityUsesNarrowerSchedule(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()
	hours := models.DefaultWorkingHours()
	hours.Tuesday = models.DaySchedule{Open: "16:00", Close: "20:00"}
	require.NoError(t, f.stores.Staff.Create(ctx, &models.Staff{ID: "eve", SalonID: "salon1", Name: "Eve", WorkingHours: hours}))

	got, err := f.svc.GetAvailability(ctx, "eve", "cut", "2030-01-08")
	require.NoError(t, err)
	assert.Equal(t, []string{"16:00", "16:30", "17:00"}, got.Slots)
}

func TestGetAvailabilityErrors(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()

	_, err := f.svc.GetAvailability(ctx, "staff1", "", testDay)
	requireKind(t, err, KindValidation)
	_, err = f.svc.GetAvailability(ctx, "staff1", "cut", "2030-01-06")
	requireKind(t, err, KindPolicy)
	_, err = f.svc.GetAvailability(ctx, "ghost", "cut", testDay)
	requireKind(t, err, KindNotFound)
	_, err = f.svc.GetAvailability(ctx, "staff1", "color", testDay)
	requireKind(t, err, KindNotFound)
}

func TestCheckAvailability(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()
	f.mustCreate(t, customer, createReq("staff1", "cut", testDay, "10:00"))

	probe := func(start, end string) bool {
		ok, err := f.svc.CheckAvailability(ctx, models.CheckAvailabilityRequest{
			SalonID: "salon1", StaffID: "staff1", Date: testDay,
			TimeSlot: models.BookingTimeSlotInput{Start: start, End: end},
		})
		require.NoError(t, err)
		return ok
	}

	assert.True(t, probe("09:30", ""))
	assert.False(t, probe("10:30", ""))
	assert.True(t, probe("11:00", "12:00"))
	assert.False(t, probe("09:00", "12:00"))

	_, err := f.svc.CheckAvailability(ctx, models.CheckAvailabilityRequest{StaffID: "staff1"})
	requireKind(t, err, KindValidation)
}
