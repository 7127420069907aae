//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"room-booking-api/tests/common/dbtest"
	"room-booking-api/tests/common/httptest"
	"room-booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("valid credentials yield a usable token", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "login@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/auth/login",
			map[string]string{"email": "login@example.com", "password": dbtest.TestUserPassword}, "")

		var body struct {
			Token string `json:"token"`
			User  struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.NotEmpty(t, body.Token)
		require.Equal(t, userID.String(), body.User.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/auth/me", nil, body.Token)

		var me map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "login@example.com", me["email"])
	})

	s.Run("wrong password is rejected", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "login@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/auth/login",
			map[string]string{"email": "login@example.com", "password": "wrong-password"}, "")

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("me without a token is forbidden", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/auth/me", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})
}
