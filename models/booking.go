package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking is a reservation of one staff member for one service.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	UserID      string        `bson:"userId" json:"userId"`
	SalonID     string        `bson:"salonId" json:"salonId"`
	StaffID     string        `bson:"staffId" json:"staffId"`
	ServiceID   string        `bson:"serviceId" json:"serviceId"`
	Date        time.Time     `bson:"date" json:"date"` // UTC midnight
	TimeSlot    TimeSlot      `bson:"timeSlot" json:"timeSlot"`
	Status      BookingStatus `bson:"status" json:"status"`
	Price       float64       `bson:"price" json:"price"` // snapshot of the service price
	Notes       string        `bson:"notes,omitempty" json:"notes,omitempty"`
	ConfirmedAt *time.Time    `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	CancelledAt *time.Time    `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CompletedAt *time.Time    `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// BookingTimeSlotInput is the caller-supplied slot; End is optional.
type BookingTimeSlotInput struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// CreateBookingRequest is the payload for booking creation.
type CreateBookingRequest struct {
	SalonID   string               `json:"salonId"`
	StaffID   string               `json:"staffId"`
	ServiceID string               `json:"serviceId"`
	Date      string               `json:"date"`
	TimeSlot  BookingTimeSlotInput `json:"timeSlot"`
	Notes     string               `json:"notes,omitempty"`
}

// UpdateBookingRequest overrides any subset of a booking's schedule fields.
type UpdateBookingRequest struct {
	StaffID   *string               `json:"staffId,omitempty"`
	ServiceID *string               `json:"serviceId,omitempty"`
	Date      *string               `json:"date,omitempty"`
	TimeSlot  *BookingTimeSlotInput `json:"timeSlot,omitempty"`
	Notes     *string               `json:"notes,omitempty"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateBookingRequest) IsEmpty() bool {
	return r.StaffID == nil && r.ServiceID == nil && r.Date == nil && r.TimeSlot == nil && r.Notes == nil
}

// RescheduleRequest moves a booking to a new date and start time.
type RescheduleRequest struct {
	Date     string               `json:"date"`
	TimeSlot BookingTimeSlotInput `json:"timeSlot"`
}

// CheckAvailabilityRequest probes a single slot for a staff member.
type CheckAvailabilityRequest struct {
	SalonID  string               `json:"salonId"`
	StaffID  string               `json:"staffId"`
	Date     string               `json:"date"`
	TimeSlot BookingTimeSlotInput `json:"timeSlot"`
}

// StaffAvailability is the list of bookable start times for a staff member on a date.
type StaffAvailability struct {
	Date      string   `json:"date"`
	StaffID   string   `json:"staffId"`
	ServiceID string   `json:"serviceId"`
	Duration  int      `json:"duration"`
	Slots     []string `json:"slots"`
}
