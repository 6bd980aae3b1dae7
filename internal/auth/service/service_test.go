package service

import (
	"context"
	"testing"
	"time"

	"bagusgo_backend/internal/auth/password"
	"bagusgo_backend/internal/auth/repository"
	"bagusgo_backend/platform/apperr"
	"bagusgo_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeUserStore struct {
	users map[string]repository.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]repository.User{}}
}

func (f *fakeUserStore) CreateUser(_ context.Context, phoneNumber, passwordHash string, subscriptionExpiresAt time.Time) (repository.User, error) {
	if _, exists := f.users[phoneNumber]; exists {
		return repository.User{}, repository.ErrPhoneTaken
	}
	user := repository.User{
		ID:                    uuid.New(),
		PhoneNumber:           phoneNumber,
		PasswordHash:          passwordHash,
		SubscriptionExpiresAt: subscriptionExpiresAt,
	}
	f.users[phoneNumber] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByPhone(_ context.Context, phoneNumber string) (repository.User, error) {
	user, ok := f.users[phoneNumber]
	if !ok {
		return repository.User{}, repository.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return repository.User{}, repository.ErrNotFound
}

type testAuthConfig struct{}

func (testAuthConfig) GetJWTAccessSecret() string       { return "test-secret" }
func (testAuthConfig) GetAccessTokenTTL() time.Duration { return time.Hour }
func (testAuthConfig) GetTrialDuration() time.Duration  { return 14 * 24 * time.Hour }

func newTestService(store repository.UserStore, now time.Time) *Service {
	return NewWithClock(store, testAuthConfig{}, logger.New("development"), func() time.Time { return now })
}

func TestRegisterNormalizesPhoneAndGrantsTrial(t *testing.T) {
	store := newFakeUserStore()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(store, now)

	session, err := svc.Register(context.Background(), "081234567890", "rahasia1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if session.PhoneNumber != "+6281234567890" {
		t.Fatalf("expected normalized phone, got %q", session.PhoneNumber)
	}
	if session.Token == "" {
		t.Fatal("expected a signed token")
	}

	user := store.users["+6281234567890"]
	wantExpiry := now.Add(14 * 24 * time.Hour)
	if !user.SubscriptionExpiresAt.Equal(wantExpiry) {
		t.Fatalf("expected trial expiry %v, got %v", wantExpiry, user.SubscriptionExpiresAt)
	}
}

func TestRegisterDuplicatePhoneConflicts(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store, time.Now())

	if _, err := svc.Register(context.Background(), "081234567890", "rahasia1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), "+6281234567890", "rahasia2")
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store, time.Now())

	if _, err := svc.Register(context.Background(), "081234567890", "rahasia1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, err := svc.Login(context.Background(), "081234567890", "salah")
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginExpiredSubscriptionIsDistinctFromUnauthorized(t *testing.T) {
	store := newFakeUserStore()
	hash, err := password.Hash("rahasia1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	expired := time.Now().Add(-time.Hour)
	if _, err := store.CreateUser(context.Background(), "+6281234567890", hash, expired); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	svc := newTestService(store, time.Now())

	_, err = svc.Login(context.Background(), "081234567890", "rahasia1")
	if !apperr.Is(err, apperr.KindSubscriptionExpired) {
		t.Fatalf("expected subscription expired, got %v", err)
	}
}

func TestSubscriptionActive(t *testing.T) {
	store := newFakeUserStore()
	now := time.Now()
	svc := newTestService(store, now)

	session, err := svc.Register(context.Background(), "081234567890", "rahasia1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	active, err := svc.SubscriptionActive(context.Background(), session.UserID)
	if err != nil {
		t.Fatalf("subscription check failed: %v", err)
	}
	if !active {
		t.Fatal("expected fresh trial to be active")
	}

	lapsed := newTestService(store, now.Add(15*24*time.Hour))
	active, err = lapsed.SubscriptionActive(context.Background(), session.UserID)
	if err != nil {
		t.Fatalf("subscription check failed: %v", err)
	}
	if active {
		t.Fatal("expected trial to have lapsed")
	}
}
