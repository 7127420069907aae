package httperr

import (
	"errors"
	"net/http"

	"room-booking-api/internal/domain/reservation"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/usecase"
	"room-booking-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// AbortWithError records err on the context for the logging middleware and
// writes the JSON error envelope.
func AbortWithError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, errorResponse{Error: errorBody{Message: err.Error()}})
}

func AbortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: errorBody{Message: message}})
}

// AbortDomainError maps the closed sentinel set onto HTTP statuses. Business
// rule rejections keep their fixed wording, bang included.
func AbortDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservation.ErrInvalidInterval):
		AbortWithMessage(c, http.StatusBadRequest, "reservation start time cannot be later than its end time!")
	case errors.Is(err, reservation.ErrRoomOccupied):
		AbortWithMessage(c, http.StatusBadRequest, "selected room is occupied during requested period!")
	case errors.Is(err, reservation.ErrNotOwner):
		AbortWithMessage(c, http.StatusForbidden, "only the reservation owner can modify it")
	case errors.Is(err, commands.ErrReservationNotFound),
		errors.Is(err, commands.ErrRoomNotFound),
		errors.Is(err, commands.ErrUserNotFound):
		AbortWithError(c, http.StatusNotFound, err)
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrUserInactive):
		AbortWithError(c, http.StatusUnauthorized, err)
	case infra.IsKind(err, infra.KindNotFound):
		AbortWithMessage(c, http.StatusNotFound, "not found")
	default:
		_ = c.Error(err)
		AbortWithMessage(c, http.StatusInternalServerError, "internal server error")
	}
}
