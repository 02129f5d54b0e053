package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const actorKey = "actor"

// JWTAuthMiddleware authenticates the bearer token and stores the caller as a
// models.Actor. The stored user role wins over the token claim; it is cached in
// redis when a cache client is given.
func JWTAuthMiddleware(users userRepo.UserRepository, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil || claims.UserID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		role, err := lookupRole(c.Request.Context(), users, cache, claims.UserID)
		if err != nil {
			utils.GetLogger().Error("Auth lookup failed", zap.String("userID", claims.UserID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication error"})
			return
		}
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		c.Set(actorKey, models.Actor{UserID: claims.UserID, Role: role})
		c.Next()
	}
}

// lookupRole returns the user's role, or "" when the user does not exist.
func lookupRole(ctx context.Context, users userRepo.UserRepository, cache *redis.Client, userID string) (string, error) {
	cacheKey := utils.AuthCachePrefix + userID
	if cache != nil {
		role, err := cache.Get(ctx, cacheKey).Result()
		if err == nil && role != "" {
			return role, nil
		}
		if err != nil && err != redis.Nil {
			utils.GetLogger().Warn("Auth cache read failed, falling back to DB", zap.Error(err))
		}
	}

	usr, err := users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if usr == nil {
		return "", nil
	}
	if cache != nil {
		if err := cache.Set(ctx, cacheKey, usr.Role, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Auth cache write failed", zap.Error(err))
		}
	}
	return usr.Role, nil
}

// ActorFromContext returns the caller stored by JWTAuthMiddleware.
func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}

// SetActor stores actor on the request, as JWTAuthMiddleware does.
func SetActor(c *gin.Context, actor models.Actor) {
	c.Set(actorKey, actor)
}

