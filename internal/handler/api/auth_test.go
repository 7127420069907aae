//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"room-booking-api/internal/handler/api"
	"room-booking-api/internal/usecase"
	"room-booking-api/internal/usecase/queries"
	"room-booking-api/tests/common/httptest"
	usecasemock "room-booking-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
	actorID  uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": gin.H{"message": "authentication credentials were not provided"}})
			return
		}
		c.Set("acting_user_id", s.actorID)
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	reqBody := map[string]string{"email": "owner@example.com", "password": "password123"}

	s.Run("success: returns token and user", func() {
		view := &queries.AuthorizedUserView{
			ID:       s.actorID,
			Email:    "owner@example.com",
			IsActive: true,
		}
		s.mockAuth.EXPECT().Login(gomock.Any(), "owner@example.com", "password123").
			Return("issued-token", view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("issued-token", body["token"])
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), "owner@example.com", "password123").
			Return("", nil, usecase.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", map[string]string{"email": "not-an-email"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the acting user", func() {
		view := &queries.AuthorizedUserView{ID: s.actorID, Email: "owner@example.com", IsActive: true}
		s.mockAuth.EXPECT().GetCurrentUser(gomock.Any(), s.actorID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.actorID.String(), body["id"])
	})

	s.Run("error: 403 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
