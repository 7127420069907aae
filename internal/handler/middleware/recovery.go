package middleware

import (
	"log/slog"
	"net/http"

	"room-booking-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "panic recovered", "panic", recovered)
		httperr.AbortWithMessage(c, http.StatusInternalServerError, "internal server error")
	})
}
