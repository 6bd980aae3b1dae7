package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore is the persistence surface the auth service depends on.
// The concrete Repository implements it against Postgres; tests use fakes.
type UserStore interface {
	CreateUser(ctx context.Context, phoneNumber, passwordHash string, subscriptionExpiresAt time.Time) (User, error)
	GetUserByPhone(ctx context.Context, phoneNumber string) (User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
}

var _ UserStore = (*Repository)(nil)
