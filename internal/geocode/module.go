package geocode

import (
	apphttp "bagusgo_backend/internal/http"
)

// Module wires the geocode HTTP routes.
type Module struct {
	handler *Handler
	service *Service
}

func NewModule(svc *Service) *Module {
	return &Module{handler: NewHandler(svc), service: svc}
}

func (m *Module) Name() string {
	return "geocode"
}

// Service exposes the resolver to sibling modules (the scan pipeline).
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/geocode", m.handler.Lookup)
	ctx.Protected.GET("/reverse-geocode", m.handler.ReverseLookup)
}

var _ apphttp.Module = (*Module)(nil)
