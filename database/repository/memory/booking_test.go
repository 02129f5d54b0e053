package memoryRepo

import (
	"context"
	"testing"
	"time"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func newBooking(id, staffID, start, end string, status models.BookingStatus) *models.Booking {
	return &models.Booking{
		ID:       id,
		UserID:   "u-" + id,
		SalonID:  "salon-1",
		StaffID:  staffID,
		Date:     day,
		TimeSlot: models.TimeSlot{Start: start, End: end},
		Status:   status,
	}
}

func TestBookingStoreRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	store := NewBookingStore()

	require.NoError(t, store.Create(ctx, newBooking("b1", "st1", "10:00", "11:00", models.StatusPending)))

	err := store.Create(ctx, newBooking("b2", "st1", "10:30", "11:30", models.StatusPending))
	assert.ErrorIs(t, err, bookingRepo.ErrSlotTaken)

	// Adjacent slots and other staff are fine.
	assert.NoError(t, store.Create(ctx, newBooking("b3", "st1", "11:00", "11:30", models.StatusPending)))
	assert.NoError(t, store.Create(ctx, newBooking("b4", "st2", "10:00", "11:00", models.StatusPending)))
}

func TestBookingStoreCancelledFreesSlot(t *testing.T) {
	ctx := context.Background()
	store := NewBookingStore()

	b := newBooking("b1", "st1", "10:00", "11:00", models.StatusPending)
	require.NoError(t, store.Create(ctx, b))

	b.Status = models.StatusCancelled
	require.NoError(t, store.Update(ctx, b))

	assert.NoError(t, store.Create(ctx, newBooking("b2", "st1", "10:00", "11:00", models.StatusPending)))
}

func TestBookingStoreUpdateIgnoresSelf(t *testing.T) {
	ctx := context.Background()
	store := NewBookingStore()

	b := newBooking("b1", "st1", "10:00", "11:00", models.StatusPending)
	require.NoError(t, store.Create(ctx, b))

	b.TimeSlot = models.TimeSlot{Start: "10:30", End: "11:30"}
	assert.NoError(t, store.Update(ctx, b))

	got, err := store.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "10:30", got.TimeSlot.Start)
}

func TestBookingStoreFindByStaffAndDate(t *testing.T) {
	ctx := context.Background()
	store := NewBookingStore()
	require.NoError(t, store.Create(ctx, newBooking("b1", "st1", "09:00", "09:30", models.StatusConfirmed)))
	require.NoError(t, store.Create(ctx, newBooking("b2", "st1", "10:00", "10:30", models.StatusCancelled)))

	out, err := store.FindByStaffAndDate(ctx, "st1", day, []models.BookingStatus{models.StatusCancelled})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b1", out[0].ID)

	out, err = store.FindByStaffAndDate(ctx, "st1", day.Add(24*time.Hour), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBookingStoreListOrderingAndPast(t *testing.T) {
	ctx := context.Background()
	store := NewBookingStore()

	early := newBooking("b1", "st1", "09:00", "09:30", models.StatusPending)
	late := newBooking("b2", "st1", "15:00", "15:30", models.StatusCompleted)
	next := newBooking("b3", "st1", "08:00", "08:30", models.StatusConfirmed)
	next.Date = day.Add(24 * time.Hour)
	for _, b := range []*models.Booking{late, next, early} {
		require.NoError(t, store.Create(ctx, b))
	}

	asc, err := store.List(ctx, bookingRepo.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2", "b3"}, ids(asc))

	desc, err := store.List(ctx, bookingRepo.Filter{Descending: true, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"b3", "b2"}, ids(desc))

	tomorrow := day.Add(24 * time.Hour)
	past, err := store.List(ctx, bookingRepo.Filter{PastAsOf: &tomorrow})
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, ids(past))

	today := day
	past, err = store.List(ctx, bookingRepo.Filter{PastAsOf: &today})
	require.NoError(t, err)
	assert.Equal(t, []string{"b2"}, ids(past))

	upcoming, err := store.List(ctx, bookingRepo.Filter{
		DateFrom: &today,
		Statuses: []models.BookingStatus{models.StatusPending, models.StatusConfirmed},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b3"}, ids(upcoming))
}

func ids(bookings []models.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}
