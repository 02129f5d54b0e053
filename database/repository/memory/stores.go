package memoryRepo

import (
	bookingRepo "salonbook/database/repository/booking"
	salonRepo "salonbook/database/repository/salon"
	serviceRepo "salonbook/database/repository/service"
	staffRepo "salonbook/database/repository/staff"
	userRepo "salonbook/database/repository/user"
)

var (
	_ salonRepo.SalonRepository     = (*SalonStore)(nil)
	_ staffRepo.StaffRepository     = (*StaffStore)(nil)
	_ serviceRepo.ServiceRepository = (*ServiceStore)(nil)
	_ userRepo.UserRepository       = (*UserStore)(nil)
	_ bookingRepo.BookingRepository = (*BookingStore)(nil)
)

// Stores bundles an in-memory repository per entity.
type Stores struct {
	Salons   *SalonStore
	Staff    *StaffStore
	Services *ServiceStore
	Users    *UserStore
	Bookings *BookingStore
}

// NewStores returns an empty set of in-memory repositories.
func NewStores() *Stores {
	return &Stores{
		Salons:   NewSalonStore(),
		Staff:    NewStaffStore(),
		Services: NewServiceStore(),
		Users:    NewUserStore(),
		Bookings: NewBookingStore(),
	}
}
