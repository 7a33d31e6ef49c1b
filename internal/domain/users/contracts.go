package users

import (
	"context"
	"errors"
)

// ErrPhoneTaken is returned when registering a phone number that already has
// an account.
var ErrPhoneTaken = errors.New("phone number already registered")

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// ProfileUpdate carries the mutable profile fields. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	Name              *string
	Email             *string
	PreferredLanguage *string
	LocationState     *string
	LocationDistrict  *string
	LandSizeHectares  *string
	PrimaryCrops      []string
}

// UserService defines account operations for farmer profiles.
type UserService interface {
	Register(ctx context.Context, phoneNumber, name, preferredLanguage string) (*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByPhone(ctx context.Context, phoneNumber string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
	RecordLogin(ctx context.Context, userID string) error
	DeleteByID(ctx context.Context, userID string) error
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByPhone(ctx context.Context, phoneNumber string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, userID string) error
}
