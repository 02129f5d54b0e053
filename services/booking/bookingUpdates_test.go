package booking

import (
	"context"
	"testing"

	"salonbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateBookingChangesServiceAndResets(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()
	b := f.mustCreate(t, customer, createReq("staff1", "cut", testDay, "10:00"))
	_, err := f.svc.UpdateBookingStatus(ctx, owner, b.ID, models.StatusConfirmed)
	require.NoError(t, err)

	updated, err := f.svc.UpdateBooking(ctx, customer, b.ID, models.UpdateBookingRequest{ServiceID: strPtr("trim")})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Nil(t, updated.ConfirmedAt)
	assert.Equal(t, models.TimeSlot{Start: "10:00", End: "10:30"}, updated.TimeSlot)
	assert.Equal(t, 20.0, updated.Price)
}

func TestUpdateBookingSameSlotIsNotSelfConflict(t *testing.T) {
	f := newFixture(t, testNow)
	b := f.mustCreate(t, customer, createReq("staff1", "cut", testDay, "10:00"))

	updated, err := f.svc.UpdateBooking(context.Background(), customer, b.ID, models.UpdateBookingRequest{
		Date:     strPtr(testDay),
		TimeSlot: &models.BookingTimeSlotInput{Start: "10:00"},
		Notes:    strPtr(" bring photos "),
	})
	require.NoError(t, err)
	assert.Equal(t, "bring photos", updated.Notes)
	assert.Equal(t, b.TimeSlot, updated.TimeSlot)
}

func TestUpdateBookingRules(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()
	b := f.mustCreate(t, customer, createReq("staff1", "cut", testDay, "10:00"))
	f.mustCreate(t, otherUser, createReq("staff2", "cut", testDay, "10:00"))

	_, err := f.svc.UpdateBooking(ctx, customer, b.ID, models.UpdateBookingRequest{})
	requireKind(t, err, KindValidation)

	_, err = f.svc.UpdateBooking(ctx, customer, "missing", models.UpdateBookingRequest{Notes: strPtr("x")})
	requireKind(t, err, KindNotFound)

	_, err = f.svc.UpdateBooking(ctx, otherUser, b.ID, models.UpdateBookingRequest{Notes: strPtr("x")})
	requireKind(t, err, KindForbidden)

	_, err = f.svc.UpdateBooking(ctx, customer, b.ID, models.UpdateBookingRequest{StaffID: strPtr("staff2")})
	requireKind(t, err, KindConflict)

	_, err = f.svc.UpdateBooking(ctx, customer, b.ID, models.UpdateBookingRequest{StaffID: strPtr("staff3")})
	requireKind(t, err, KindNotFound)
	assert.Equal(t, "New staff does not belong to the same salon", MessageOf(err))

	_, err = f.svc.UpdateBooking(ctx, customer, b.ID, models.UpdateBookingRequest{ServiceID: strPtr("color")})
	requireKind(t, err, KindNotFound)
	assert.Equal(t, "New service does not belong to the same salon", MessageOf(err))

	_, err = f.svc.UpdateBooking(ctx, customer, b.ID, models.UpdateBookingRequest{Date: strPtr("2030-01-01")})
	requireKind(t, err, KindPolicy)

	_, err = f.svc.CancelBooking(ctx, owner, b.ID)
	require.NoError(t, err)
	_, err = f.svc.UpdateBooking(ctx, customer, b.ID, models.UpdateBookingRequest{Notes: strPtr("x")})
	requireKind(t, err, KindPolicy)
	assert.Equal(t, "Cannot update a booking that is already cancelled", MessageOf(err))
}

func TestRescheduleBooking(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()
	b := f.mustCreate(t, customer, createReq("staff1", "cut", testDay, "10:00"))

	moved, err := f.svc.RescheduleBooking(ctx, customer, b.ID, models.RescheduleRequest{
		Date:     "2030-01-08",
		TimeSlot: models.BookingTimeSlotInput{Start: "15:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "2030-01-08", moved.Date.Format("2006-01-02"))
	assert.Equal(t, models.TimeSlot{Start: "15:00", End: "16:00"}, moved.TimeSlot)
	assert.Equal(t, models.StatusPending, moved.Status)

	// Overlapping its own previous slot is fine.
	moved, err = f.svc.RescheduleBooking(ctx, customer, b.ID, models.RescheduleRequest{
		Date:     "2030-01-08",
		TimeSlot: models.BookingTimeSlotInput{Start: "15:30"},
	})
	require.NoError(t, err)
	assert.Equal(t, "16:30", moved.TimeSlot.End)
}

func TestRescheduleBookingRules(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()
	b := f.mustCreate(t, customer, createReq("staff1", "cut", testDay, "10:00"))
	f.mustCreate(t, otherUser, createReq("staff1", "cut", testDay, "13:00"))

	_, err := f.svc.RescheduleBooking(ctx, customer, b.ID, models.RescheduleRequest{Date: testDay})
	requireKind(t, err, KindValidation)

	_, err = f.svc.RescheduleBooking(ctx, customer, b.ID, models.RescheduleRequest{Date: testDay, TimeSlot: models.BookingTimeSlotInput{Start: "10:00"}})
	requireKind(t, err, KindValidation)
	assert.Equal(t, "New date and time are the same as the current booking", MessageOf(err))

	_, err = f.svc.RescheduleBooking(ctx, customer, b.ID, models.RescheduleRequest{Date: "2030-01-06", TimeSlot: models.BookingTimeSlotInput{Start: "10:00"}})
	requireKind(t, err, KindPolicy)
	assert.Equal(t, "Reschedule date cannot be in the past", MessageOf(err))

	_, err = f.svc.RescheduleBooking(ctx, customer, b.ID, models.RescheduleRequest{Date: testDay, TimeSlot: models.BookingTimeSlotInput{Start: "12:30"}})
	requireKind(t, err, KindConflict)

	_, err = f.svc.UpdateBookingStatus(ctx, owner, b.ID, models.StatusConfirmed)
	require.NoError(t, err)
	_, err = f.svc.UpdateBookingStatus(ctx, owner, b.ID, models.StatusCompleted)
	require.NoError(t, err)
	_, err = f.svc.RescheduleBooking(ctx, customer, b.ID, models.RescheduleRequest{Date: testDay, TimeSlot: models.BookingTimeSlotInput{Start: "15:00"}})
	requireKind(t, err, KindPolicy)
	assert.Equal(t, "Cannot reschedule a booking that is already completed", MessageOf(err))
}
