package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity aggregate. The accounting core only ever asks
// whether a user exists before creating their account.
type User struct {
	UserID    uuid.UUID
	Email     string
	FullName  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewUser(email string, fullName *string, now time.Time) *User {
	return &User{
		UserID:    uuid.New(),
		Email:     email,
		FullName:  fullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
