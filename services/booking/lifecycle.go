package booking

import (
	"time"

	"salonbook/models"
)

// transitions lists the legal next states of each booking status.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled, models.StatusNoShow},
	models.StatusCompleted: {},
	models.StatusCancelled: {},
	models.StatusNoShow:    {},
}

// settableStatuses are the targets accepted by a raw status update.
var settableStatuses = []models.BookingStatus{
	models.StatusConfirmed,
	models.StatusCancelled,
	models.StatusCompleted,
	models.StatusNoShow,
}

// IsValidStatus reports whether s names a known booking status.
func IsValidStatus(s models.BookingStatus) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s models.BookingStatus) bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether from -> to is allowed.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ApplyTransition moves b to status to and stamps the matching timestamp.
func ApplyTransition(b *models.Booking, to models.BookingStatus, now time.Time) error {
	if !CanTransition(b.Status, to) {
		return NewInvalidTransition(string(b.Status), string(to))
	}
	b.Status = to
	b.UpdatedAt = now
	switch to {
	case models.StatusConfirmed:
		b.ConfirmedAt = &now
	case models.StatusCancelled:
		b.CancelledAt = &now
	case models.StatusCompleted:
		b.CompletedAt = &now
	}
	return nil
}

// resetToPending returns b to the creation state after a schedule change.
// This is not a table transition.
func resetToPending(b *models.Booking, now time.Time) {
	b.Status = models.StatusPending
	b.ConfirmedAt = nil
	b.UpdatedAt = now
}
