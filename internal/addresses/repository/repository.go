package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("saved address not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// SavedAddress is a user's bookmarked delivery location. Coordinates
// are nullable: addresses saved before geocoding ran have none.
type SavedAddress struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Label     string
	Address   string
	Lat       *float64
	Lng       *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

const savedAddressColumns = "id, user_id, label, address, lat, lng, created_at, updated_at"

func (r *Repository) Create(ctx context.Context, userID uuid.UUID, label, address string, lat, lng *float64) (SavedAddress, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO saved_addresses (user_id, label, address, lat, lng)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+savedAddressColumns+`
	`, userID, label, address, lat, lng)
	return scanSavedAddress(row)
}

func (r *Repository) GetByID(ctx context.Context, userID, id uuid.UUID) (SavedAddress, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+savedAddressColumns+`
		FROM saved_addresses WHERE id = $1 AND user_id = $2
	`, id, userID)
	return scanSavedAddress(row)
}

// List returns one page of the user's addresses, newest first, plus
// the total count for pagination.
func (r *Repository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]SavedAddress, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM saved_addresses WHERE user_id = $1
	`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+savedAddressColumns+`
		FROM saved_addresses
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]SavedAddress, 0, limit)
	for rows.Next() {
		addr, err := scanSavedAddress(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, addr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *Repository) Update(ctx context.Context, userID, id uuid.UUID, label, address string, lat, lng *float64) (SavedAddress, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE saved_addresses
		SET label = $3, address = $4, lat = $5, lng = $6, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+savedAddressColumns+`
	`, id, userID, label, address, lat, lng)
	return scanSavedAddress(row)
}

func (r *Repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM saved_addresses WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListMissingCoordinates returns addresses that were saved without a
// geocoded position. Used by the backfill tool.
func (r *Repository) ListMissingCoordinates(ctx context.Context, limit int) ([]SavedAddress, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+savedAddressColumns+`
		FROM saved_addresses
		WHERE lat IS NULL OR lng IS NULL
		ORDER BY created_at
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SavedAddress
	for rows.Next() {
		addr, err := scanSavedAddress(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, addr)
	}
	return items, rows.Err()
}

// SetCoordinates stores a geocoded position for an address, regardless
// of owner. Backfill only.
func (r *Repository) SetCoordinates(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE saved_addresses SET lat = $2, lng = $3, updated_at = now() WHERE id = $1
	`, id, lat, lng)
	return err
}

func scanSavedAddress(row pgx.Row) (SavedAddress, error) {
	var a SavedAddress
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Label,
		&a.Address,
		&a.Lat,
		&a.Lng,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return SavedAddress{}, ErrNotFound
	}
	if err != nil {
		return SavedAddress{}, err
	}
	return a, nil
}
