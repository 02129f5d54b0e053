package models

import "time"

// Salon is a business accepting bookings.
type Salon struct {
	ID           string       `bson:"id" json:"id"`
	OwnerID      string       `bson:"ownerId" json:"ownerId"`
	Name         string       `bson:"name" json:"name"`
	Address      string       `bson:"address,omitempty" json:"address,omitempty"`
	Phone        string       `bson:"phone,omitempty" json:"phone,omitempty"`
	Holidays     []time.Time  `bson:"holidays,omitempty" json:"holidays,omitempty"` // UTC midnights
	IsAvailable  bool         `bson:"isAvailable" json:"isAvailable"`
	WorkingHours WorkingHours `bson:"workingHours" json:"workingHours"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// IsHoliday reports whether date (a UTC midnight) is one of the salon's holidays.
func (s *Salon) IsHoliday(date time.Time) bool {
	for _, h := range s.Holidays {
		hu := h.UTC()
		if time.Date(hu.Year(), hu.Month(), hu.Day(), 0, 0, 0, 0, time.UTC).Equal(date) {
			return true
		}
	}
	return false
}

// Staff is a person who performs services at a salon.
type Staff struct {
	ID           string       `bson:"id" json:"id"`
	SalonID      string       `bson:"salonId" json:"salonId"`
	UserID       string       `bson:"userId,omitempty" json:"userId,omitempty"`
	Name         string       `bson:"name" json:"name"`
	Specialties  []string     `bson:"specialties,omitempty" json:"specialties,omitempty"`
	WorkingHours WorkingHours `bson:"workingHours" json:"workingHours"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// Service is a bookable offering of a salon.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	SalonID     string    `bson:"salonId" json:"salonId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Price       float64   `bson:"price" json:"price"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateSalonRequest registers a salon. Missing working hours take the defaults.
type CreateSalonRequest struct {
	Name         string        `json:"name"`
	Address      string        `json:"address,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	IsAvailable  *bool         `json:"isAvailable,omitempty"`
	WorkingHours *WorkingHours `json:"workingHours,omitempty"`
}

// CreateStaffRequest adds a staff member to a salon.
type CreateStaffRequest struct {
	UserID       string        `json:"userId,omitempty"`
	Name         string        `json:"name"`
	Specialties  []string      `json:"specialties,omitempty"`
	WorkingHours *WorkingHours `json:"workingHours,omitempty"`
}

// CreateServiceRequest adds a service to a salon.
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
}

// UpdateHolidaysRequest replaces a salon's holidays with YYYY-MM-DD dates.
type UpdateHolidaysRequest struct {
	Holidays []string `json:"holidays"`
}
