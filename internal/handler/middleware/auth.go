package middleware

import (
	"net/http"
	"strings"

	"room-booking-api/internal/handler/httperr"
	"room-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const actingUserKey = "acting_user_id"

// RequireAuth guards mutating routes. Requests without a valid bearer token
// are rejected with 403.
func RequireAuth(auth usecase.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			httperr.AbortWithMessage(c, http.StatusForbidden, "authentication credentials were not provided")
			return
		}

		userID, err := auth.ValidateToken(token)
		if err != nil {
			httperr.AbortWithMessage(c, http.StatusForbidden, "invalid or expired token")
			return
		}

		c.Set(actingUserKey, userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetActingUser returns the authenticated user's ID set by RequireAuth.
func GetActingUser(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(actingUserKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
