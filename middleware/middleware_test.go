package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	memoryRepo "salonbook/database/repository/memory"
	"salonbook/models"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(t *testing.T) (*gin.Engine, *memoryRepo.UserStore) {
	t.Helper()
	users := memoryRepo.NewUserStore()
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(users, nil), func(c *gin.Context) {
		actor, _ := ActorFromContext(c)
		c.JSON(http.StatusOK, actor)
	})
	r.GET("/owners", JWTAuthMiddleware(users, nil), RequireRoles(models.RoleSalonOwner), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, users
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	r, users := newAuthRouter(t)
	require.NoError(t, users.Create(context.Background(), &models.User{ID: "u1", Email: "a@b.c", Role: models.RoleCustomer}))

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "garbage").Code)

	ghost, err := utils.GenerateToken("ghost", models.RoleCustomer, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", ghost).Code)

	// The stored role wins over the claim.
	token, err := utils.GenerateToken("u1", models.RoleSuperAdmin, time.Hour)
	require.NoError(t, err)
	w := get(r, "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"u1","role":"customer"}`, w.Body.String())
}

func TestRequireRoles(t *testing.T) {
	r, users := newAuthRouter(t)
	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &models.User{ID: "c", Email: "c@x", Role: models.RoleCustomer}))
	require.NoError(t, users.Create(ctx, &models.User{ID: "o", Email: "o@x", Role: models.RoleSalonOwner}))

	customerToken, err := utils.GenerateToken("c", models.RoleCustomer, time.Hour)
	require.NoError(t, err)
	ownerToken, err := utils.GenerateToken("o", models.RoleSalonOwner, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(r, "/owners", customerToken).Code)
	assert.Equal(t, http.StatusNoContent, get(r, "/owners", ownerToken).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("1.1.1.1"))
	assert.Equal(t, http.StatusOK, hit("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("1.1.1.1"))
	assert.Equal(t, http.StatusOK, hit("2.2.2.2"))
}

func TestGetClientIP(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "9.9.9.9:1234"
	assert.Equal(t, "9.9.9.9", getClientIP(c))

	c.Request.Header.Set("X-Real-IP", " 8.8.8.8 ")
	assert.Equal(t, "8.8.8.8", getClientIP(c))
}
