package transport

import (
	"time"

	"bagusgo_backend/internal/addresses/repository"
)

// SaveAddressRequest creates or replaces a saved address. Coordinates
// are optional; the backfill tool fills them in later when absent.
type SaveAddressRequest struct {
	Label   string   `json:"label" validate:"required,min=1,max=60"`
	Address string   `json:"address" validate:"required,min=3,max=500"`
	Lat     *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng     *float64 `json:"lng" validate:"omitempty,longitude"`
}

// ListQuery carries pagination parameters.
type ListQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type AddressPayload struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Address   string   `json:"address"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	CreatedAt string   `json:"created_at"`
}

// AddressPage mirrors the paginated list contract.
type AddressPage struct {
	Items   []AddressPayload `json:"items"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	Total   int              `json:"total"`
	HasMore bool             `json:"hasMore"`
}

func ToPayload(a repository.SavedAddress) AddressPayload {
	return AddressPayload{
		ID:        a.ID.String(),
		Label:     a.Label,
		Address:   a.Address,
		Lat:       a.Lat,
		Lng:       a.Lng,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func ToPayloads(addrs []repository.SavedAddress) []AddressPayload {
	out := make([]AddressPayload, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, ToPayload(a))
	}
	return out
}
