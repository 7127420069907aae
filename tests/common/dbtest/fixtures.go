//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"room-booking-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const TestUserPassword = "password123"

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		"TRUNCATE reservation_employees, reservations, rooms, users CASCADE")
	return err
}

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	hash, err := password.HashPassword(TestUserPassword)
	require.NoError(t, err)

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, first_name, last_name, is_active) VALUES ($1, $2, $3, 'Test', 'User', true) ON CONFLICT (email) DO NOTHING",
		userID, email, hash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, title string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO rooms (id, title) VALUES ($1, $2)", roomID, title)
	require.NoError(t, err)

	return roomID
}

func CreateTestReservation(t *testing.T, db DBLike, roomID, ownerID uuid.UUID, from, to time.Time) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO reservations (id, title, reserved_from, reserved_to, room_id, owner_id) VALUES ($1, 'seeded', $2, $3, $4, $5)",
		reservationID, from, to, roomID, ownerID)
	require.NoError(t, err)

	return reservationID
}
