package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the external identity referenced by reservations. The booking
// core never creates users; it only resolves and embeds them.
type User struct {
	id           uuid.UUID
	email        Email
	firstName    string
	lastName     string
	passwordHash string
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash, firstName, lastName string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		firstName:    firstName,
		lastName:     lastName,
		passwordHash: passwordHash,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) FirstName() string     { return u.firstName }
func (u *User) LastName() string      { return u.lastName }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
