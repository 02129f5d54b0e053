package booking

import (
	"context"
	"fmt"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
)

func (s *DefaultBookingService) ownsSalon(ctx context.Context, actor models.Actor, salonID string) (bool, error) {
	if actor.Role != models.RoleSalonOwner {
		return false, nil
	}
	salon, err := s.Repos.Salons.GetByID(ctx, salonID)
	if err != nil {
		return false, fmt.Errorf("failed to load salon: %w", err)
	}
	return salon != nil && salon.OwnerID == actor.UserID, nil
}

func (s *DefaultBookingService) worksAt(ctx context.Context, actor models.Actor, salonID string) (bool, error) {
	if actor.Role != models.RoleStaff {
		return false, nil
	}
	ok, err := s.Repos.Staff.ExistsForUser(ctx, salonID, actor.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to check staff membership: %w", err)
	}
	return ok, nil
}

// canAccessSalon allows the salon's owner, its staff and super admins.
func (s *DefaultBookingService) canAccessSalon(ctx context.Context, actor models.Actor, salonID string) error {
	if actor.Role == models.RoleSuperAdmin {
		return nil
	}
	owner, err := s.ownsSalon(ctx, actor, salonID)
	if err != nil || owner {
		return err
	}
	staff, err := s.worksAt(ctx, actor, salonID)
	if err != nil || staff {
		return err
	}
	return NewForbiddenError("You do not have access to this salon")
}

// canView allows the booking's customer plus everyone with salon access.
func (s *DefaultBookingService) canView(ctx context.Context, actor models.Actor, b *models.Booking) error {
	if b.UserID == actor.UserID {
		return nil
	}
	if err := s.canAccessSalon(ctx, actor, b.SalonID); err != nil {
		if KindOf(err) == KindForbidden {
			return NewForbiddenError("You do not have access to this booking")
		}
		return err
	}
	return nil
}

// canModify allows the booking's customer, the salon owner and super admins.
func (s *DefaultBookingService) canModify(ctx context.Context, actor models.Actor, b *models.Booking) error {
	if b.UserID == actor.UserID || actor.Role == models.RoleSuperAdmin {
		return nil
	}
	owner, err := s.ownsSalon(ctx, actor, b.SalonID)
	if err != nil || owner {
		return err
	}
	return NewForbiddenError("You do not have permission to modify this booking")
}

// canManage allows salon owners, salon staff and super admins to drive the lifecycle.
func (s *DefaultBookingService) canManage(ctx context.Context, actor models.Actor, b *models.Booking) error {
	if err := s.canAccessSalon(ctx, actor, b.SalonID); err != nil {
		if KindOf(err) == KindForbidden {
			return NewForbiddenError("Only salon staff can update booking status")
		}
		return err
	}
	return nil
}

// scopeFor narrows a listing to what actor may see. ok is false when the scope is empty.
func (s *DefaultBookingService) scopeFor(ctx context.Context, actor models.Actor) (f bookingRepo.Filter, ok bool, err error) {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return f, true, nil
	case models.RoleCustomer:
		f.UserID = actor.UserID
		return f, true, nil
	case models.RoleSalonOwner:
		salons, err := s.Repos.Salons.ListByOwner(ctx, actor.UserID)
		if err != nil {
			return f, false, fmt.Errorf("failed to load owned salons: %w", err)
		}
		for _, salon := range salons {
			f.SalonIDs = append(f.SalonIDs, salon.ID)
		}
		return f, len(f.SalonIDs) > 0, nil
	case models.RoleStaff:
		records, err := s.Repos.Staff.ListByUser(ctx, actor.UserID)
		if err != nil {
			return f, false, fmt.Errorf("failed to load staff records: %w", err)
		}
		for _, st := range records {
			f.StaffIDs = append(f.StaffIDs, st.ID)
		}
		return f, len(f.StaffIDs) > 0, nil
	default:
		return f, false, NewForbiddenError("Unknown role")
	}
}
