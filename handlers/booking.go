package handlers

import (
	"net/http"

	"salonbook/models"
	"salonbook/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking service over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func respondBookings(c *gin.Context, bookings []models.Booking, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Service.CreateBooking(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	b, err := h.Service.GetBooking(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingHandler handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.UpdateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Service.UpdateBooking(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RescheduleBookingHandler handles PATCH /api/bookings/:id/reschedule.
func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.RescheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Service.RescheduleBooking(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateStatusHandler handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req struct {
		Status models.BookingStatus `json:"status"`
	}
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.Service.UpdateBookingStatus(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	b, err := h.Service.CancelBooking(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListAllBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListAllBookingsHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookings, err := h.Service.ListAllBookings(c.Request.Context(), actor)
	respondBookings(c, bookings, err)
}

// UpcomingBookingsHandler handles GET /api/bookings/upcoming.
func (h *BookingHandler) UpcomingBookingsHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookings, err := h.Service.UpcomingBookings(c.Request.Context(), actor)
	respondBookings(c, bookings, err)
}

// PastBookingsHandler handles GET /api/bookings/past.
func (h *BookingHandler) PastBookingsHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookings, err := h.Service.PastBookings(c.Request.Context(), actor)
	respondBookings(c, bookings, err)
}

// TodayBookingsHandler handles GET /api/bookings/today.
func (h *BookingHandler) TodayBookingsHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookings, err := h.Service.TodayBookings(c.Request.Context(), actor)
	respondBookings(c, bookings, err)
}

// CalendarBookingsHandler handles GET /api/bookings/calendar/:salonId.
func (h *BookingHandler) CalendarBookingsHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookings, err := h.Service.CalendarBookings(c.Request.Context(), actor,
		c.Param("salonId"), c.Query("startDate"), c.Query("endDate"))
	respondBookings(c, bookings, err)
}

// UserBookingsHandler handles GET /api/bookings/user/:userId.
func (h *BookingHandler) UserBookingsHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookings, err := h.Service.ListUserBookings(c.Request.Context(), actor, c.Param("userId"))
	respondBookings(c, bookings, err)
}

// SalonBookingsHandler handles GET /api/bookings/salon/:salonId?status=.
func (h *BookingHandler) SalonBookingsHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookings, err := h.Service.ListSalonBookings(c.Request.Context(), actor,
		c.Param("salonId"), models.BookingStatus(c.Query("status")))
	respondBookings(c, bookings, err)
}

// CheckAvailabilityHandler handles POST /api/bookings/check-availability.
func (h *BookingHandler) CheckAvailabilityHandler(c *gin.Context) {
	var req models.CheckAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}
	available, err := h.Service.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// StaffAvailabilityHandler handles GET /api/staff/:id/availability?date=&serviceId=.
func (h *BookingHandler) StaffAvailabilityHandler(c *gin.Context) {
	out, err := h.Service.GetAvailability(c.Request.Context(), c.Param("id"), c.Query("serviceId"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
