package readstore

import (
	"context"
	"errors"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

// FindByEmail returns the user view together with the stored password hash
// for credential verification.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var v queries.AuthorizedUserView
	var passwordHash string
	err := r.db.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, is_active, password_hash
		 FROM users WHERE email = $1`, email,
	).Scan(&v.ID, &v.Email, &v.FirstName, &v.LastName, &v.IsActive, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, passwordHash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, is_active
		 FROM users WHERE id = $1`, id,
	).Scan(&v.ID, &v.Email, &v.FirstName, &v.LastName, &v.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

// CountExisting reports how many of the given IDs resolve to users, for
// reference validation of owner and employee sets.
func (r *UserReadStore) CountExisting(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM users WHERE id = ANY($1)`, ids).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count users", err)
	}
	return count, nil
}
