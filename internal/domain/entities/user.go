package entities

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Email is the login identifier and is
// matched exactly, never normalized. PasswordHash is empty for accounts
// created through Google sign-in.
type User struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	GoogleID        string    `json:"googleId,omitempty"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	IsGoogleUser    bool      `json:"isGoogleUser"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewUser builds a user for password registration. IsEmailVerified stays
// false and IsActive true; neither flag is enforced by any flow yet.
func NewUser(email, passwordHash, firstName, lastName string) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
	}
}
