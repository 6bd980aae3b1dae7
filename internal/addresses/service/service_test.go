package service

import (
	"context"
	"fmt"
	"testing"

	"bagusgo_backend/internal/addresses/repository"
	"bagusgo_backend/platform/apperr"
	"bagusgo_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeAddressStore struct {
	items []repository.SavedAddress
}

func (f *fakeAddressStore) Create(_ context.Context, userID uuid.UUID, label, address string, lat, lng *float64) (repository.SavedAddress, error) {
	a := repository.SavedAddress{
		ID:      uuid.New(),
		UserID:  userID,
		Label:   label,
		Address: address,
		Lat:     lat,
		Lng:     lng,
	}
	f.items = append(f.items, a)
	return a, nil
}

func (f *fakeAddressStore) GetByID(_ context.Context, userID, id uuid.UUID) (repository.SavedAddress, error) {
	for _, a := range f.items {
		if a.ID == id && a.UserID == userID {
			return a, nil
		}
	}
	return repository.SavedAddress{}, repository.ErrNotFound
}

func (f *fakeAddressStore) List(_ context.Context, userID uuid.UUID, limit, offset int) ([]repository.SavedAddress, int, error) {
	var owned []repository.SavedAddress
	for _, a := range f.items {
		if a.UserID == userID {
			owned = append(owned, a)
		}
	}

	total := len(owned)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return owned[offset:end], total, nil
}

func (f *fakeAddressStore) Update(_ context.Context, userID, id uuid.UUID, label, address string, lat, lng *float64) (repository.SavedAddress, error) {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			f.items[i].Label = label
			f.items[i].Address = address
			f.items[i].Lat = lat
			f.items[i].Lng = lng
			return f.items[i], nil
		}
	}
	return repository.SavedAddress{}, repository.ErrNotFound
}

func (f *fakeAddressStore) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newTestService(store *fakeAddressStore) *Service {
	return New(store, logger.New("development"))
}

func seedAddresses(t *testing.T, svc *Service, userID uuid.UUID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := svc.Create(context.Background(), userID, "home", fmt.Sprintf("Jl. Contoh No. %d", i), nil, nil); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
}

func TestListPaginationReportsHasMore(t *testing.T) {
	svc := newTestService(&fakeAddressStore{})
	userID := uuid.New()
	seedAddresses(t, svc, userID, 25)

	first, err := svc.List(context.Background(), userID, 1, 10)
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if len(first.Items) != 10 || first.Total != 25 || !first.HasMore {
		t.Fatalf("unexpected first page: items=%d total=%d hasMore=%v", len(first.Items), first.Total, first.HasMore)
	}

	last, err := svc.List(context.Background(), userID, 3, 10)
	if err != nil {
		t.Fatalf("list page 3: %v", err)
	}
	if len(last.Items) != 5 || last.HasMore {
		t.Fatalf("unexpected last page: items=%d hasMore=%v", len(last.Items), last.HasMore)
	}
}

func TestListClampsInvalidPagination(t *testing.T) {
	svc := newTestService(&fakeAddressStore{})
	userID := uuid.New()
	seedAddresses(t, svc, userID, 3)

	page, err := svc.List(context.Background(), userID, 0, -5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Page != 1 || page.Limit != defaultPageSize {
		t.Fatalf("expected clamped page=1 limit=%d, got page=%d limit=%d", defaultPageSize, page.Page, page.Limit)
	}
	if len(page.Items) != 3 {
		t.Fatalf("expected all 3 items, got %d", len(page.Items))
	}
}

func TestListIsScopedToOwner(t *testing.T) {
	store := &fakeAddressStore{}
	svc := newTestService(store)
	owner, stranger := uuid.New(), uuid.New()
	seedAddresses(t, svc, owner, 2)

	page, err := svc.List(context.Background(), stranger, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 0 || len(page.Items) != 0 {
		t.Fatalf("expected stranger to see nothing, got total=%d", page.Total)
	}
}

func TestDeleteUnknownAddressIsNotFound(t *testing.T) {
	svc := newTestService(&fakeAddressStore{})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found kind, got %v", err)
	}
}

func TestUpdateUnknownAddressIsNotFound(t *testing.T) {
	svc := newTestService(&fakeAddressStore{})

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), "work", "Jl. Baru No. 1", nil, nil)
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found kind, got %v", err)
	}
}
