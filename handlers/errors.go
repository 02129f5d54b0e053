package handlers

import (
	"net/http"

	"salonbook/middleware"
	"salonbook/models"
	"salonbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps a domain error kind to an HTTP status.
func statusFor(kind booking.ErrorKind) int {
	switch kind {
	case booking.KindValidation, booking.KindPolicy, booking.KindInvalidTransition:
		return http.StatusBadRequest
	case booking.KindNotFound:
		return http.StatusNotFound
	case booking.KindForbidden:
		return http.StatusForbidden
	case booking.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": message}. Infrastructure failures are logged
// and reported without detail.
func respondError(c *gin.Context, err error) {
	kind := booking.KindOf(err)
	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		getLogger(c).Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": booking.MessageOf(err), "kind": kind})
}

// requireActor returns the authenticated caller or writes a 401.
func requireActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return models.Actor{}, false
	}
	return actor, true
}

// bindJSON decodes the body or writes a 400.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return false
	}
	return true
}
