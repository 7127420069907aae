//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"room-booking-api/internal/pkg/config"
	"room-booking-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken mints a token the way the server itself would, so e2e tests
// can authenticate without going through the login endpoint.
func IssueToken(t *testing.T, cfg config.Config, userID uuid.UUID) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err)

	token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(userID)
	require.NoError(t, err)
	return token
}
