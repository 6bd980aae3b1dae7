package service

import (
	"context"
	"errors"
	"time"

	"bagusgo_backend/internal/auth/password"
	"bagusgo_backend/internal/auth/repository"
	"bagusgo_backend/internal/auth/token"
	"bagusgo_backend/platform/apperr"
	"bagusgo_backend/platform/config"
	"bagusgo_backend/platform/logger"
	"bagusgo_backend/platform/phone"

	"github.com/google/uuid"
)

const (
	msgInvalidCredentials  = "invalid phone number or password"
	msgSubscriptionExpired = "trial or subscription has ended"
)

// Clock abstracts time.Now so subscription expiry can be tested.
type Clock func() time.Time

type Service struct {
	repo  repository.UserStore
	cfg   config.AuthServiceConfig
	log   *logger.Logger
	clock Clock
}

// Session is what a successful register or login hands back to the client.
type Session struct {
	Token       string
	UserID      uuid.UUID
	PhoneNumber string
}

func New(repo repository.UserStore, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log, clock: time.Now}
}

// NewWithClock is used by tests to pin the current time.
func NewWithClock(repo repository.UserStore, cfg config.AuthServiceConfig, log *logger.Logger, clock Clock) *Service {
	return &Service{repo: repo, cfg: cfg, log: log, clock: clock}
}

// Register creates a user with a trial subscription window and signs them in.
func (s *Service) Register(ctx context.Context, phoneNumber, plainPassword string) (Session, error) {
	normalized := phone.NormalizeE164(phoneNumber)

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return Session{}, apperr.Wrap(apperr.KindInternal, "failed to hash password", err)
	}

	trialEnd := s.clock().Add(s.cfg.GetTrialDuration())
	user, err := s.repo.CreateUser(ctx, normalized, hash, trialEnd)
	if err != nil {
		if errors.Is(err, repository.ErrPhoneTaken) {
			s.log.AuthEvent("register", normalized, false, "phone taken")
			return Session{}, apperr.Conflict("phone number already registered")
		}
		return Session{}, apperr.Wrap(apperr.KindInternal, "failed to create user", err)
	}

	s.log.AuthEvent("register", normalized, true, "")
	return s.issueSession(user)
}

// Login verifies credentials and subscription status. An expired trial or
// subscription is a 403 with its own code, not a generic failure: the client
// must route the user to the subscription screen, not an error toast.
func (s *Service) Login(ctx context.Context, phoneNumber, plainPassword string) (Session, error) {
	normalized := phone.NormalizeE164(phoneNumber)

	user, err := s.repo.GetUserByPhone(ctx, normalized)
	if err != nil {
		s.log.AuthEvent("login", normalized, false, "unknown phone")
		return Session{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		s.log.AuthEvent("login", normalized, false, "wrong password")
		return Session{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	if s.clock().After(user.SubscriptionExpiresAt) {
		s.log.AuthEvent("login", normalized, false, "subscription expired")
		return Session{}, apperr.SubscriptionExpired(msgSubscriptionExpired)
	}

	s.log.AuthEvent("login", normalized, true, "")
	return s.issueSession(user)
}

// SubscriptionActive reports whether the user's trial/subscription window is
// still open. The optimize-route endpoint gates on this.
func (s *Service) SubscriptionActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apperr.Unauthorized("unknown user")
		}
		return false, apperr.Wrap(apperr.KindInternal, "failed to load user", err)
	}
	return s.clock().Before(user.SubscriptionExpiresAt), nil
}

func (s *Service) issueSession(user repository.User) (Session, error) {
	signed, err := token.Issue(user.ID, s.cfg.GetJWTAccessSecret(), s.cfg.GetAccessTokenTTL())
	if err != nil {
		return Session{}, apperr.Wrap(apperr.KindInternal, "failed to sign token", err)
	}
	return Session{Token: signed, UserID: user.ID, PhoneNumber: user.PhoneNumber}, nil
}
