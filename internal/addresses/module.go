// Package addresses provides the saved-addresses bounded context module.
package addresses

import (
	"bagusgo_backend/internal/addresses/handler"
	"bagusgo_backend/internal/addresses/repository"
	"bagusgo_backend/internal/addresses/service"
	apphttp "bagusgo_backend/internal/http"
	"bagusgo_backend/platform/logger"
	"bagusgo_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Module struct {
	handler *handler.Handler
	repo    *repository.Repository
}

func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{handler: h, repo: repo}
}

func (m *Module) Name() string {
	return "addresses"
}

// Repository exposes the store for the coordinate backfill tool.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/addresses"))
}

var _ apphttp.Module = (*Module)(nil)
