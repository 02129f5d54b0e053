package handlers

import (
	"net/http"

	"salonbook/models"
	"salonbook/services/salon"

	"github.com/gin-gonic/gin"
)

// SalonHandler exposes catalogue management over HTTP.
type SalonHandler struct {
	Service salon.CatalogService
}

func NewSalonHandler(svc salon.CatalogService) *SalonHandler {
	return &SalonHandler{Service: svc}
}

// ListSalonsHandler handles GET /api/salons.
func (h *SalonHandler) ListSalonsHandler(c *gin.Context) {
	salons, err := h.Service.ListSalons(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons, "count": len(salons)})
}

// GetSalonHandler handles GET /api/salons/:id.
func (h *SalonHandler) GetSalonHandler(c *gin.Context) {
	s, err := h.Service.GetSalon(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// CreateSalonHandler handles POST /api/salons.
func (h *SalonHandler) CreateSalonHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.CreateSalonRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.Service.CreateSalon(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// UpdateWorkingHoursHandler handles PUT /api/salons/:id/working-hours.
func (h *SalonHandler) UpdateWorkingHoursHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var hours models.WorkingHours
	if !bindJSON(c, &hours) {
		return
	}
	s, err := h.Service.UpdateWorkingHours(c.Request.Context(), actor, c.Param("id"), hours)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateHolidaysHandler handles PUT /api/salons/:id/holidays.
func (h *SalonHandler) UpdateHolidaysHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.UpdateHolidaysRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.Service.UpdateHolidays(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ListStaffHandler handles GET /api/salons/:id/staff.
func (h *SalonHandler) ListStaffHandler(c *gin.Context) {
	staff, err := h.Service.ListStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff, "count": len(staff)})
}

// AddStaffHandler handles POST /api/salons/:id/staff.
func (h *SalonHandler) AddStaffHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.CreateStaffRequest
	if !bindJSON(c, &req) {
		return
	}
	st, err := h.Service.AddStaff(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// ListServicesHandler handles GET /api/salons/:id/services.
func (h *SalonHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Service.ListServices(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services, "count": len(services)})
}

// AddServiceHandler handles POST /api/salons/:id/services.
func (h *SalonHandler) AddServiceHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	svc, err := h.Service.AddService(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}
