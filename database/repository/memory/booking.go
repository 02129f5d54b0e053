package memoryRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
)

// BookingStore is an in-memory BookingRepository. Writes re-check the staff
// slot under the store lock, mirroring the Mongo transaction.
type BookingStore struct {
	mu   sync.RWMutex
	byID map[string]models.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{byID: make(map[string]models.Booking)}
}

func (s *BookingStore) GetByID(_ context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *BookingStore) FindByStaffAndDate(_ context.Context, staffID string, date time.Time, exclude []models.BookingStatus) ([]models.Booking, error) {
	return s.day(func(b models.Booking) bool { return b.StaffID == staffID }, date, exclude), nil
}

func (s *BookingStore) FindByUserAndDate(_ context.Context, userID string, date time.Time, exclude []models.BookingStatus) ([]models.Booking, error) {
	return s.day(func(b models.Booking) bool { return b.UserID == userID }, date, exclude), nil
}

func (s *BookingStore) day(keep func(models.Booking) bool, date time.Time, exclude []models.BookingStatus) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.byID {
		if keep(b) && b.Date.Equal(date) && !hasStatus(exclude, b.Status) {
			out = append(out, b)
		}
	}
	return out
}

func (s *BookingStore) Create(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[booking.ID]; exists {
		return fmt.Errorf("booking with id %s already exists", booking.ID)
	}
	if s.slotTaken(booking) {
		return bookingRepo.ErrSlotTaken
	}
	s.byID[booking.ID] = *booking
	return nil
}

func (s *BookingStore) Update(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[booking.ID]; !exists {
		return fmt.Errorf("booking with id %s not found", booking.ID)
	}
	if s.slotTaken(booking) {
		return bookingRepo.ErrSlotTaken
	}
	s.byID[booking.ID] = *booking
	return nil
}

// slotTaken must be called with s.mu held.
func (s *BookingStore) slotTaken(booking *models.Booking) bool {
	if !bookingRepo.HoldsTime(booking.Status) {
		return false
	}
	for _, other := range s.byID {
		if other.ID == booking.ID || other.StaffID != booking.StaffID || !other.Date.Equal(booking.Date) {
			continue
		}
		if !bookingRepo.HoldsTime(other.Status) {
			continue
		}
		if other.TimeSlot.Start < booking.TimeSlot.End && other.TimeSlot.End > booking.TimeSlot.Start {
			return true
		}
	}
	return false
}

func (s *BookingStore) List(_ context.Context, f bookingRepo.Filter) ([]models.Booking, error) {
	s.mu.RLock()
	out := []models.Booking{}
	for _, b := range s.byID {
		if matches(f, b) {
			out = append(out, b)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, c := out[i], out[j]
		if !a.Date.Equal(c.Date) {
			if f.Descending {
				return a.Date.After(c.Date)
			}
			return a.Date.Before(c.Date)
		}
		if f.Descending {
			return a.TimeSlot.Start > c.TimeSlot.Start
		}
		return a.TimeSlot.Start < c.TimeSlot.Start
	})
	if f.Limit > 0 && int64(len(out)) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func matches(f bookingRepo.Filter, b models.Booking) bool {
	if f.UserID != "" && b.UserID != f.UserID {
		return false
	}
	if len(f.SalonIDs) > 0 && !contains(f.SalonIDs, b.SalonID) {
		return false
	}
	if len(f.StaffIDs) > 0 && !contains(f.StaffIDs, b.StaffID) {
		return false
	}
	if f.DateFrom != nil && b.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && !b.Date.Before(*f.DateTo) {
		return false
	}
	if len(f.Statuses) > 0 && !hasStatus(f.Statuses, b.Status) {
		return false
	}
	if hasStatus(f.ExcludeStatuses, b.Status) {
		return false
	}
	if f.PastAsOf != nil && !b.Date.Before(*f.PastAsOf) && !hasStatus(bookingRepo.TerminalStatuses, b.Status) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func hasStatus(list []models.BookingStatus, s models.BookingStatus) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
