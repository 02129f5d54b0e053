package booking

import (
	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/utils"
)

// Overlaps reports whether two half-open slots share any time.
func Overlaps(a, b models.TimeSlot) bool {
	return utils.TimeToMinutes(a.Start) < utils.TimeToMinutes(b.End) &&
		utils.TimeToMinutes(a.End) > utils.TimeToMinutes(b.Start)
}

// FindConflict returns the first time-holding booking overlapping candidate,
// ignoring the booking with id excludeID.
func FindConflict(candidate models.TimeSlot, existing []models.Booking, excludeID string) *models.Booking {
	for i := range existing {
		b := &existing[i]
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if !bookingRepo.HoldsTime(b.Status) {
			continue
		}
		if Overlaps(candidate, b.TimeSlot) {
			return b
		}
	}
	return nil
}

// HasConflict reports whether FindConflict finds anything.
func HasConflict(candidate models.TimeSlot, existing []models.Booking, excludeID string) bool {
	return FindConflict(candidate, existing, excludeID) != nil
}
