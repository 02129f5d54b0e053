package booking

import (
	"salonbook/models"
	"salonbook/utils"
)

// DefaultSlotInterval is the step between candidate slot starts, in minutes.
const DefaultSlotInterval = 30

// ComputeSlots walks schedule in step-minute increments and returns the "HH:MM"
// start of every slot of length duration that fits before close, does not start
// before nowMinutes (when non-nil) and does not overlap a busy interval.
func ComputeSlots(schedule models.DaySchedule, busy []models.TimeSlot, duration, step int, nowMinutes *int) []string {
	slots := []string{}
	if schedule.IsClosed || duration <= 0 {
		return slots
	}
	if step <= 0 {
		step = DefaultSlotInterval
	}

	open := utils.TimeToMinutes(schedule.Open)
	closeAt := utils.TimeToMinutes(schedule.Close)

	busyMinutes := make([][2]int, 0, len(busy))
	for _, b := range busy {
		busyMinutes = append(busyMinutes, [2]int{utils.TimeToMinutes(b.Start), utils.TimeToMinutes(b.End)})
	}

	for current := open; current < closeAt; current += step {
		slotEnd := current + duration
		if slotEnd > closeAt {
			continue
		}
		if nowMinutes != nil && current < *nowMinutes {
			continue
		}
		free := true
		for _, b := range busyMinutes {
			if current < b[1] && slotEnd > b[0] {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, utils.MinutesToTime(current))
		}
	}
	return slots
}

// EffectiveSchedule intersects the salon and staff windows for one day.
// The result is closed when either side is closed or the windows do not meet.
func EffectiveSchedule(salon, staff models.DaySchedule) models.DaySchedule {
	if salon.IsClosed || staff.IsClosed {
		return models.DaySchedule{Open: "00:00", Close: "00:00", IsClosed: true}
	}
	open := salon.Open
	if staff.Open > open {
		open = staff.Open
	}
	closeAt := salon.Close
	if staff.Close < closeAt {
		closeAt = staff.Close
	}
	if open >= closeAt {
		return models.DaySchedule{Open: open, Close: closeAt, IsClosed: true}
	}
	return models.DaySchedule{Open: open, Close: closeAt}
}
