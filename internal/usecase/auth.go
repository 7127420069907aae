package usecase

import (
	"context"
	"log/slog"
	"time"

	"room-booking-api/internal/domain/user"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/clock"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/pkg/jwt"
	"room-booking-api/internal/pkg/password"
	"room-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is inactive")
)

// UserReadStore is the slice of user reads the auth flow needs.
type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
}

type UserWriteStore interface {
	RecordLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

// TokenService issues and checks the bearer tokens carried by mutating
// requests.
type TokenService interface {
	GenerateToken(userID uuid.UUID) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email, rawPassword string) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
	ValidateToken(token string) (uuid.UUID, error)
}

type authUseCaseImpl struct {
	users  UserReadStore
	writes UserWriteStore
	tokens TokenService
	clk    clock.Clock
}

func NewAuthUseCase(users UserReadStore, writes UserWriteStore, tokens TokenService, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{users: users, writes: writes, tokens: tokens, clk: clk}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (string, *queries.AuthorizedUserView, error) {
	creds, err := buildCredentials(email, rawPassword)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	view, hash, err := a.users.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !view.IsActive {
		return "", nil, ErrUserInactive
	}
	if err := password.ComparePassword(hash, creds.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(view.ID)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to generate token")
	}

	// A failed stamp must not block the login itself.
	if err := a.writes.RecordLogin(ctx, view.ID, a.clk.Now()); err != nil {
		slog.WarnContext(ctx, "failed to record last login", "user_id", view.ID, "error", err)
	}
	return token, view, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	return a.users.FindByID(ctx, userID)
}

func (a *authUseCaseImpl) ValidateToken(token string) (uuid.UUID, error) {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

func buildCredentials(email, rawPassword string) (user.Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return user.Credentials{}, err
	}
	p, err := user.NewPassword(rawPassword)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(e, p), nil
}
