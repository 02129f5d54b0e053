package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(bookingOperations.WithLabelValues("create", "ok"))
	IncBookingOperation("create", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(bookingOperations.WithLabelValues("create", "ok")))

	before = testutil.ToFloat64(bookingConflicts.WithLabelValues("staff"))
	IncBookingConflict("staff")
	assert.Equal(t, before+1, testutil.ToFloat64(bookingConflicts.WithLabelValues("staff")))

	before = testutil.ToFloat64(notificationsFailed)
	IncNotificationFailed()
	assert.Equal(t, before+1, testutil.ToFloat64(notificationsFailed))
}
