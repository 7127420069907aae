package api

import (
	"net/http"

	"room-booking-api/internal/handler/dto/request"
	"room-booking-api/internal/handler/dto/response"
	"room-booking-api/internal/handler/httperr"
	"room-booking-api/internal/handler/middleware"
	"room-booking-api/internal/usecase/commands"
	"room-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{commands: cmds, queries: qs}
}

// List godoc
// @Summary List reservations
// @Param room query string false "Room ID filter"
// @Success 200 {array} response.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	roomID, err := roomFilter(c)
	if err != nil {
		httperr.AbortWithMessage(c, http.StatusBadRequest, "room filter must be a valid UUID")
		return
	}

	views, err := h.queries.List(c.Request.Context(), roomID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewReservationListResponse(views))
}

// Get godoc
// @Summary Get a reservation
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.ReservationResponse
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewReservationResponse(view))
}

// Create godoc
// @Summary Create a reservation
// @Security BearerAuth
// @Success 201 {object} response.ReservationResponse
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actorID, ok := actingUser(c)
	if !ok {
		return
	}

	var req request.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), actorID, req.ToInput())
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewReservationResponse(view))
}

// Update godoc
// @Summary Update a reservation
// @Security BearerAuth
// @Success 200 {object} response.ReservationResponse
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	actorID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err)
		return
	}

	if err := h.commands.Update(c.Request.Context(), actorID, id, req.ToInput()); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewReservationResponse(view))
}

// Delete godoc
// @Summary Delete a reservation
// @Security BearerAuth
// @Success 204
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	actorID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), actorID, id); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// roomFilter reads the optional room filter, accepting the legacy room_id
// parameter name as well.
func roomFilter(c *gin.Context) (*uuid.UUID, error) {
	raw, ok := c.GetQuery("room")
	if !ok {
		raw, ok = c.GetQuery("room_id")
	}
	if !ok || raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithMessage(c, http.StatusBadRequest, "identifier must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func actingUser(c *gin.Context) (uuid.UUID, bool) {
	actorID, ok := middleware.GetActingUser(c)
	if !ok {
		httperr.AbortWithMessage(c, http.StatusForbidden, "authentication credentials were not provided")
		return uuid.Nil, false
	}
	return actorID, true
}
