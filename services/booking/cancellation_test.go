package booking

import (
	"context"
	"testing"
	"time"

	"salonbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelWindowByRole(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()
	b := f.mustCreate(t, customer, createReq("staff1", "cut", testDay, "10:00"))

	f.svc.Clock = FixedClock(time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC))

	_, err := f.svc.CancelBooking(ctx, customer, b.ID)
	requireKind(t, err, KindPolicy)
	assert.Equal(t, "Bookings can only be cancelled at least 2 hours before the appointment", MessageOf(err))

	cancelled, err := f.svc.CancelBooking(ctx, owner, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	_, err = f.svc.CancelBooking(ctx, owner, b.ID)
	requireKind(t, err, KindPolicy)
	assert.Equal(t, "Booking is already cancelled", MessageOf(err))
}

func TestCancelFreesSlot(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()
	b := f.mustCreate(t, customer, createReq("staff1", "cut", "2030-01-08", "10:00"))

	_, err := f.svc.CancelBooking(ctx, customer, b.ID)
	require.NoError(t, err)

	f.mustCreate(t, otherUser, createReq("staff1", "cut", "2030-01-08", "10:00"))
}

func TestCancelTerminalAndForeign(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()
	b := f.mustCreate(t, customer, createReq("staff1", "cut", "2030-01-08", "10:00"))

	_, err := f.svc.CancelBooking(ctx, otherUser, b.ID)
	requireKind(t, err, KindForbidden)

	_, err = f.svc.UpdateBookingStatus(ctx, staffMember, b.ID, models.StatusConfirmed)
	require.NoError(t, err)
	_, err = f.svc.UpdateBookingStatus(ctx, staffMember, b.ID, models.StatusNoShow)
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(ctx, admin, b.ID)
	requireKind(t, err, KindPolicy)
	assert.Equal(t, "Cannot cancel a no-show booking", MessageOf(err))
}

func TestUpdateBookingStatus(t *testing.T) {
	f := newFixture(t, testNow)
	ctx := context.Background()
	b := f.mustCreate(t, customer, createReq("staff1", "cut", testDay, "10:00"))

	_, err := f.svc.UpdateBookingStatus(ctx, owner, b.ID, "pending")
	requireKind(t, err, KindValidation)

	_, err = f.svc.UpdateBookingStatus(ctx, customer, b.ID, models.StatusConfirmed)
	requireKind(t, err, KindForbidden)

	_, err = f.svc.UpdateBookingStatus(ctx, models.Actor{UserID: "owner2", Role: models.RoleSalonOwner}, b.ID, models.StatusConfirmed)
	requireKind(t, err, KindForbidden)

	_, err = f.svc.UpdateBookingStatus(ctx, owner, b.ID, models.StatusCompleted)
	requireKind(t, err, KindInvalidTransition)

	confirmed, err := f.svc.UpdateBookingStatus(ctx, owner, b.ID, models.StatusConfirmed)
	require.NoError(t, err)
	require.NotNil(t, confirmed.ConfirmedAt)

	completed, err := f.svc.UpdateBookingStatus(ctx, admin, b.ID, models.StatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
}
