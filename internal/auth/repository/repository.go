package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")
var ErrPhoneTaken = errors.New("phone number already registered")

const uniqueViolationCode = "23505"

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type User struct {
	ID                    uuid.UUID
	PhoneNumber           string
	PasswordHash          string
	SubscriptionExpiresAt time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (r *Repository) CreateUser(ctx context.Context, phoneNumber, passwordHash string, subscriptionExpiresAt time.Time) (User, error) {
	var user User
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (phone_number, password_hash, subscription_expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, phone_number, password_hash, subscription_expires_at, created_at, updated_at
	`, phoneNumber, passwordHash, subscriptionExpiresAt).Scan(
		&user.ID,
		&user.PhoneNumber,
		&user.PasswordHash,
		&user.SubscriptionExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return User{}, ErrPhoneTaken
		}
		return User{}, err
	}

	return user, nil
}

func (r *Repository) GetUserByPhone(ctx context.Context, phoneNumber string) (User, error) {
	return r.getUser(ctx, `
		SELECT id, phone_number, password_hash, subscription_expires_at, created_at, updated_at
		FROM users WHERE phone_number = $1
	`, phoneNumber)
}

func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	return r.getUser(ctx, `
		SELECT id, phone_number, password_hash, subscription_expires_at, created_at, updated_at
		FROM users WHERE id = $1
	`, id)
}

func (r *Repository) getUser(ctx context.Context, query string, arg interface{}) (User, error) {
	var user User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.PhoneNumber,
		&user.PasswordHash,
		&user.SubscriptionExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return user, nil
}
