package handlers

import (
	userRepoPkg "salonbook/database/repository/user"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the endpoint handlers and what the auth middleware needs.
type HandlerBundle struct {
	UserRepo  userRepoPkg.UserRepository
	AuthCache *redis.Client

	Booking *BookingHandler
	Salon   *SalonHandler
}
