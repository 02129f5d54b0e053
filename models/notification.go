package models

// BookingEvent names what happened to a booking.
type BookingEvent string

const (
	EventBookingCreated     BookingEvent = "booking_created"
	EventBookingUpdated     BookingEvent = "booking_updated"
	EventBookingRescheduled BookingEvent = "booking_rescheduled"
	EventBookingCancelled   BookingEvent = "booking_cancelled"
	EventBookingStatus      BookingEvent = "booking_status_changed"
)

// BookingNotificationPayload is the body of a booking notification task.
type BookingNotificationPayload struct {
	Event     BookingEvent  `json:"event"`
	BookingID string        `json:"bookingId"`
	UserID    string        `json:"userId"`
	SalonID   string        `json:"salonId"`
	StaffID   string        `json:"staffId"`
	Date      string        `json:"date"`
	Start     string        `json:"start"`
	End       string        `json:"end"`
	Status    BookingStatus `json:"status"`
}

// ReminderPayload is the body of an appointment reminder task.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	Start     string `json:"start"`
	FireDate  string `json:"fireDate"`
}
