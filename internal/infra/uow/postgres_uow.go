package uow

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"math/big"
	"time"

	"room-booking-api/internal/domain/reservation"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/infra/readstore"
	"room-booking-api/internal/infra/repository"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries    = 3
	baseBackoff   = 10 * time.Millisecond
	maxBackoff    = 500 * time.Millisecond
	backoffFactor = 2
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// PostgresUoW runs command work in serializable transactions. Serializable
// isolation makes the read-check-write sequence in the commands safe against
// concurrent bookings: two transactions that both saw a free room cannot
// both commit.
type PostgresUoW struct {
	pool  *pgxpool.Pool
	reads shared.CommandReads
}

func NewPostgresUoW(pool *pgxpool.Pool) *PostgresUoW {
	return &PostgresUoW{
		pool:  pool,
		reads: newCommandReads(pool),
	}
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return u.reads
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := backoffWithJitter(attempt)
			slog.WarnContext(ctx, "retrying serializable transaction",
				"attempt", attempt, "backoff", backoff.String())
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return errs.Wrap(ctx.Err(), "transaction retry aborted")
			}
		}

		err := u.runInTx(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err
	}
	return infra.WrapRepoErr("serializable transaction retries exhausted", lastErr, infra.KindConflict)
}

func (u *PostgresUoW) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		_ = pgxTx.Rollback(ctx)
	}()

	if err := fn(ctx, newPgTx(pgxTx)); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}

func backoffWithJitter(attempt int) time.Duration {
	backoff := baseBackoff
	for i := 1; i < attempt; i++ {
		backoff *= backoffFactor
	}
	if backoff > maxBackoff {
		backoff = maxBackoff
	}
	jitter, err := rand.Int(rand.Reader, big.NewInt(int64(backoff)))
	if err != nil {
		return backoff
	}
	return backoff + time.Duration(jitter.Int64())
}

// pgTx exposes repositories and reads bound to one open transaction.
type pgTx struct {
	tx           pgx.Tx
	reservations *repository.ReservationRepository
	reads        shared.CommandReads
}

func newPgTx(tx pgx.Tx) *pgTx {
	return &pgTx{
		tx:           tx,
		reservations: repository.NewReservationRepository(),
		reads:        newCommandReads(tx),
	}
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	return t.reservations
}

func (t *pgTx) Reads() shared.CommandReads {
	return t.reads
}

func (t *pgTx) DB() db.DBTX {
	return t.tx
}

// commandReads backs the guard checks with the read stores, bound either to
// the pool or to an open transaction.
type commandReads struct {
	reservations *readstore.ReservationReadStore
	rooms        *readstore.RoomReadStore
	users        *readstore.UserReadStore
}

func newCommandReads(dbtx db.DBTX) *commandReads {
	return &commandReads{
		reservations: readstore.NewReservationReadStore(dbtx),
		rooms:        readstore.NewRoomReadStore(dbtx),
		users:        readstore.NewUserReadStore(dbtx),
	}
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	return r.reservations.SnapshotByID(ctx, id)
}

func (r *commandReads) RoomExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.rooms.Exists(ctx, id)
}

func (r *commandReads) UsersExist(ctx context.Context, ids []uuid.UUID) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	count, err := r.users.CountExisting(ctx, ids)
	if err != nil {
		return false, err
	}
	return count == len(ids), nil
}

func (r *commandReads) BookedIntervals(ctx context.Context, roomID uuid.UUID) ([]reservation.BookedInterval, error) {
	return r.reservations.BookedIntervals(ctx, roomID)
}
