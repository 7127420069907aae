package response

import (
	"room-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AuthorizedUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
}

type LoginResponse struct {
	Token string         `json:"token"`
	User  AuthorizedUser `json:"user"`
}

func NewLoginResponse(token string, view *queries.AuthorizedUserView) LoginResponse {
	resp := LoginResponse{Token: token}
	_ = copier.Copy(&resp.User, view)
	return resp
}

func NewAuthorizedUser(view *queries.AuthorizedUserView) AuthorizedUser {
	var u AuthorizedUser
	_ = copier.Copy(&u, view)
	return u
}
