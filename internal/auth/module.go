// Package auth provides the authentication bounded context module.
package auth

import (
	"bagusgo_backend/internal/auth/handler"
	"bagusgo_backend/internal/auth/repository"
	"bagusgo_backend/internal/auth/service"
	apphttp "bagusgo_backend/internal/http"
	"bagusgo_backend/platform/config"
	"bagusgo_backend/platform/logger"
	"bagusgo_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the auth module with all its dependencies.
func NewModule(pool *pgxpool.Pool, cfg config.AuthServiceConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service exposes the auth service for adapters (e.g., the optimize module's
// subscription gate).
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts auth routes under /api/auth with stricter rate limiting.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	authGroup := ctx.API.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)
}

var _ apphttp.Module = (*Module)(nil)
