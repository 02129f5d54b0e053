package memoryRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"salonbook/models"
)

// SalonStore is an in-memory SalonRepository.
type SalonStore struct {
	mu   sync.RWMutex
	byID map[string]models.Salon
}

func NewSalonStore() *SalonStore {
	return &SalonStore{byID: make(map[string]models.Salon)}
}

func (s *SalonStore) GetByID(_ context.Context, id string) (*models.Salon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	salon, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &salon, nil
}

func (s *SalonStore) ListByOwner(_ context.Context, ownerID string) ([]models.Salon, error) {
	return s.collect(func(salon models.Salon) bool { return salon.OwnerID == ownerID }), nil
}

func (s *SalonStore) List(_ context.Context) ([]models.Salon, error) {
	return s.collect(func(models.Salon) bool { return true }), nil
}

func (s *SalonStore) collect(keep func(models.Salon) bool) []models.Salon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Salon{}
	for _, salon := range s.byID {
		if keep(salon) {
			out = append(out, salon)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *SalonStore) Create(_ context.Context, salon *models.Salon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[salon.ID]; exists {
		return fmt.Errorf("salon with id %s already exists", salon.ID)
	}
	s.byID[salon.ID] = *salon
	return nil
}

func (s *SalonStore) UpdateWorkingHours(_ context.Context, id string, hours models.WorkingHours) error {
	return s.mutate(id, func(salon *models.Salon) { salon.WorkingHours = hours })
}

func (s *SalonStore) UpdateHolidays(_ context.Context, id string, holidays []time.Time) error {
	return s.mutate(id, func(salon *models.Salon) { salon.Holidays = append([]time.Time(nil), holidays...) })
}

func (s *SalonStore) mutate(id string, fn func(*models.Salon)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	salon, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("salon with id %s not found", id)
	}
	fn(&salon)
	salon.UpdatedAt = time.Now().UTC()
	s.byID[id] = salon
	return nil
}

// StaffStore is an in-memory StaffRepository.
type StaffStore struct {
	mu   sync.RWMutex
	byID map[string]models.Staff
}

func NewStaffStore() *StaffStore {
	return &StaffStore{byID: make(map[string]models.Staff)}
}

func (s *StaffStore) GetByID(_ context.Context, id string) (*models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	staff, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &staff, nil
}

func (s *StaffStore) ListBySalon(_ context.Context, salonID string) ([]models.Staff, error) {
	return s.collect(func(st models.Staff) bool { return st.SalonID == salonID }), nil
}

func (s *StaffStore) ListByUser(_ context.Context, userID string) ([]models.Staff, error) {
	return s.collect(func(st models.Staff) bool { return st.UserID != "" && st.UserID == userID }), nil
}

func (s *StaffStore) ExistsForUser(ctx context.Context, salonID, userID string) (bool, error) {
	staff, _ := s.ListByUser(ctx, userID)
	for _, st := range staff {
		if st.SalonID == salonID {
			return true, nil
		}
	}
	return false, nil
}

func (s *StaffStore) collect(keep func(models.Staff) bool) []models.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Staff{}
	for _, st := range s.byID {
		if keep(st) {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *StaffStore) Create(_ context.Context, staff *models.Staff) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[staff.ID]; exists {
		return fmt.Errorf("staff with id %s already exists", staff.ID)
	}
	s.byID[staff.ID] = *staff
	return nil
}

// ServiceStore is an in-memory ServiceRepository.
type ServiceStore struct {
	mu   sync.RWMutex
	byID map[string]models.Service
}

func NewServiceStore() *ServiceStore {
	return &ServiceStore{byID: make(map[string]models.Service)}
}

func (s *ServiceStore) GetByID(_ context.Context, id string) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &svc, nil
}

func (s *ServiceStore) ListBySalon(_ context.Context, salonID string) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Service{}
	for _, svc := range s.byID {
		if svc.SalonID == salonID {
			out = append(out, svc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *ServiceStore) Create(_ context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[svc.ID]; exists {
		return fmt.Errorf("service with id %s already exists", svc.ID)
	}
	s.byID[svc.ID] = *svc
	return nil
}

// UserStore is an in-memory UserRepository.
type UserStore struct {
	mu   sync.RWMutex
	byID map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{byID: make(map[string]models.User)}
}

func (s *UserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.ID == user.ID || (user.Email != "" && u.Email == user.Email) {
			return fmt.Errorf("user %s already exists", user.ID)
		}
	}
	s.byID[user.ID] = *user
	return nil
}
