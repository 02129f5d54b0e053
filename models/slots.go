package models

// TimeSlot is a booked or candidate window on a single day.
// Start and End are zero-padded "HH:MM" strings, so lexical order matches time order.
type TimeSlot struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// DaySchedule is the working window for one weekday.
type DaySchedule struct {
	Open     string `bson:"open" json:"open"`
	Close    string `bson:"close" json:"close"`
	IsClosed bool   `bson:"isClosed" json:"isClosed"`
}

// WorkingHours holds one DaySchedule per weekday.
type WorkingHours struct {
	Monday    DaySchedule `bson:"monday" json:"monday"`
	Tuesday   DaySchedule `bson:"tuesday" json:"tuesday"`
	Wednesday DaySchedule `bson:"wednesday" json:"wednesday"`
	Thursday  DaySchedule `bson:"thursday" json:"thursday"`
	Friday    DaySchedule `bson:"friday" json:"friday"`
	Saturday  DaySchedule `bson:"saturday" json:"saturday"`
	Sunday    DaySchedule `bson:"sunday" json:"sunday"`
}

// Weekdays lists lowercase weekday names in calendar order starting Monday.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ForDay returns the schedule for a lowercase weekday name.
func (w WorkingHours) ForDay(day string) (DaySchedule, bool) {
	switch day {
	case "monday":
		return w.Monday, true
	case "tuesday":
		return w.Tuesday, true
	case "wednesday":
		return w.Wednesday, true
	case "thursday":
		return w.Thursday, true
	case "friday":
		return w.Friday, true
	case "saturday":
		return w.Saturday, true
	case "sunday":
		return w.Sunday, true
	}
	return DaySchedule{}, false
}

// Days returns the schedules keyed by weekday name.
func (w WorkingHours) Days() map[string]DaySchedule {
	out := make(map[string]DaySchedule, len(Weekdays))
	for _, day := range Weekdays {
		out[day], _ = w.ForDay(day)
	}
	return out
}

// DefaultWorkingHours is Mon-Fri 09:00-18:00, Sat 10:00-16:00, Sun closed.
func DefaultWorkingHours() WorkingHours {
	weekday := DaySchedule{Open: "09:00", Close: "18:00"}
	return WorkingHours{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  DaySchedule{Open: "10:00", Close: "16:00"},
		Sunday:    DaySchedule{Open: "00:00", Close: "00:00", IsClosed: true},
	}
}
