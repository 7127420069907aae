package api

import (
	"net/http"

	"room-booking-api/internal/handler/dto/response"
	"room-booking-api/internal/handler/httperr"
	"room-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	queries queries.RoomQueries
}

func NewRoomHandler(qs queries.RoomQueries) *RoomHandler {
	return &RoomHandler{queries: qs}
}

// List godoc
// @Summary List rooms
// @Success 200 {array} response.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewRoomListResponse(views))
}
