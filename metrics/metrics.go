package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salonbook",
			Name:      "booking_operations_total",
			Help:      "Count of booking operations by operation and result.",
		},
		[]string{"operation", "result"},
	)

	bookingConflicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salonbook",
			Name:      "booking_conflicts_total",
			Help:      "Count of rejected double-bookings by scope.",
		},
		[]string{"scope"},
	)

	availabilitySlots = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "salonbook",
			Name:      "availability_slots",
			Help:      "Number of free slots returned per availability query.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
		},
	)

	notificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salonbook",
			Name:      "notifications_failed_total",
			Help:      "Count of booking notifications that could not be dispatched.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingOperations, bookingConflicts, availabilitySlots, notificationsFailed)
	})
}

func IncBookingOperation(operation, result string) {
	bookingOperations.WithLabelValues(operation, result).Inc()
}

func IncBookingConflict(scope string) {
	bookingConflicts.WithLabelValues(scope).Inc()
}

func ObserveAvailabilitySlots(n int) {
	availabilitySlots.Observe(float64(n))
}

func IncNotificationFailed() {
	notificationsFailed.Inc()
}
