package booking

import (
	"testing"
	"time"

	"salonbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []models.BookingStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusCompleted,
	models.StatusCancelled,
	models.StatusNoShow,
}

func TestTransitionClosure(t *testing.T) {
	legal := map[[2]models.BookingStatus]bool{
		{models.StatusPending, models.StatusConfirmed}:   true,
		{models.StatusPending, models.StatusCancelled}:   true,
		{models.StatusConfirmed, models.StatusCompleted}: true,
		{models.StatusConfirmed, models.StatusCancelled}: true,
		{models.StatusConfirmed, models.StatusNoShow}:    true,
	}
	now := time.Date(2030, 1, 7, 12, 0, 0, 0, time.UTC)

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			b := &models.Booking{Status: from}
			err := ApplyTransition(b, to, now)
			if !legal[[2]models.BookingStatus{from, to}] {
				requireKind(t, err, KindInvalidTransition)
				assert.Equal(t, from, b.Status)
				continue
			}
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, b.Status)
			assert.Equal(t, now, b.UpdatedAt)
			switch to {
			case models.StatusConfirmed:
				require.NotNil(t, b.ConfirmedAt)
				assert.Equal(t, now, *b.ConfirmedAt)
			case models.StatusCancelled:
				require.NotNil(t, b.CancelledAt)
				assert.Equal(t, now, *b.CancelledAt)
			case models.StatusCompleted:
				require.NotNil(t, b.CompletedAt)
				assert.Equal(t, now, *b.CompletedAt)
			}
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.False(t, IsTerminal(models.StatusPending))
	assert.False(t, IsTerminal(models.StatusConfirmed))
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.True(t, IsTerminal(models.StatusNoShow))
	assert.False(t, IsValidStatus("archived"))
}

func TestInvalidTransitionMessage(t *testing.T) {
	err := ApplyTransition(&models.Booking{Status: models.StatusCompleted}, models.StatusPending, time.Now())
	assert.Equal(t, "Cannot transition from 'completed' to 'pending'", MessageOf(err))
}
