package service

import (
	"context"
	"errors"

	"bagusgo_backend/internal/addresses/repository"
	"bagusgo_backend/platform/apperr"
	"bagusgo_backend/platform/logger"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	repo repository.AddressStore
	log  *logger.Logger
}

func New(repo repository.AddressStore, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Page is one slice of a user's saved addresses plus the cursor state
// clients need to render infinite scroll.
type Page struct {
	Items   []repository.SavedAddress
	Page    int
	Limit   int
	Total   int
	HasMore bool
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, label, address string, lat, lng *float64) (repository.SavedAddress, error) {
	saved, err := s.repo.Create(ctx, userID, label, address, lat, lng)
	if err != nil {
		return repository.SavedAddress{}, apperr.Wrap(apperr.KindInternal, "failed to save address", err)
	}
	s.log.Info("address saved", "user_id", userID, "address_id", saved.ID)
	return saved, nil
}

// List returns the requested page, clamping page to >= 1 and limit into
// [1, maxPageSize].
func (s *Service) List(ctx context.Context, userID uuid.UUID, page, limit int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset := (page - 1) * limit
	items, total, err := s.repo.List(ctx, userID, limit, offset)
	if err != nil {
		return Page{}, apperr.Wrap(apperr.KindInternal, "failed to list addresses", err)
	}

	return Page{
		Items:   items,
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: offset+len(items) < total,
	}, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (repository.SavedAddress, error) {
	addr, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.SavedAddress{}, apperr.NotFound("address not found")
		}
		return repository.SavedAddress{}, apperr.Wrap(apperr.KindInternal, "failed to load address", err)
	}
	return addr, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, label, address string, lat, lng *float64) (repository.SavedAddress, error) {
	updated, err := s.repo.Update(ctx, userID, id, label, address, lat, lng)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.SavedAddress{}, apperr.NotFound("address not found")
		}
		return repository.SavedAddress{}, apperr.Wrap(apperr.KindInternal, "failed to update address", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("address not found")
		}
		return apperr.Wrap(apperr.KindInternal, "failed to delete address", err)
	}
	s.log.Info("address deleted", "user_id", userID, "address_id", id)
	return nil
}
