package models

import "time"

// Roles known to the booking engine.
const (
	RoleCustomer   = "customer"
	RoleSalonOwner = "salon-owner"
	RoleStaff      = "staff"
	RoleSuperAdmin = "super-admin"
)

// User represents a platform user.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// IsPrivileged reports whether the actor acts on behalf of a salon or the platform.
func (a Actor) IsPrivileged() bool {
	return a.Role == RoleSalonOwner || a.Role == RoleStaff || a.Role == RoleSuperAdmin
}
