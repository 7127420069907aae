package api

import (
	"net/http"

	"room-booking-api/internal/handler/dto/request"
	"room-booking-api/internal/handler/dto/response"
	"room-booking-api/internal/handler/httperr"
	"room-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth usecase.AuthUseCase
}

func NewAuthHandler(auth usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Authenticate and issue a token
// @Success 200 {object} response.LoginResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err)
		return
	}

	token, view, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewLoginResponse(token, view))
}

// Me godoc
// @Summary Current authenticated user
// @Security BearerAuth
// @Success 200 {object} response.AuthorizedUser
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actorID, ok := actingUser(c)
	if !ok {
		return
	}

	view, err := h.auth.GetCurrentUser(c.Request.Context(), actorID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewAuthorizedUser(view))
}
