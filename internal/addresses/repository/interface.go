package repository

import (
	"context"

	"github.com/google/uuid"
)

// AddressStore abstracts persistence so the service can be tested with
// an in-memory fake.
type AddressStore interface {
	Create(ctx context.Context, userID uuid.UUID, label, address string, lat, lng *float64) (SavedAddress, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (SavedAddress, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]SavedAddress, int, error)
	Update(ctx context.Context, userID, id uuid.UUID, label, address string, lat, lng *float64) (SavedAddress, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

var _ AddressStore = (*Repository)(nil)
