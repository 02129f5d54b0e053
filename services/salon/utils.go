package salon

import (
	"salonbook/models"
	"salonbook/services/booking"
	"salonbook/utils"
)

// validateWorkingHours checks every open day has HH:MM bounds with open before close.
func validateWorkingHours(hours models.WorkingHours) error {
	for _, day := range models.Weekdays {
		sched, _ := hours.ForDay(day)
		if sched.IsClosed {
			continue
		}
		if !utils.IsValidTimeFormat(sched.Open) || !utils.IsValidTimeFormat(sched.Close) {
			return booking.NewValidationError("Working hours for %s must be in HH:MM format", day)
		}
		if sched.Open >= sched.Close {
			return booking.NewValidationError("Opening time must be before closing time on %s", day)
		}
	}
	return nil
}
