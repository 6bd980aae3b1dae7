package optimize

import (
	apphttp "bagusgo_backend/internal/http"
)

// Module wires the route optimization endpoint.
type Module struct {
	handler *Handler
}

func NewModule(svc *Service, subs SubscriptionChecker) *Module {
	return &Module{handler: NewHandler(svc, subs)}
}

func (m *Module) Name() string {
	return "optimize"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/optimize-route", m.handler.OptimizeRoute)
}

var _ apphttp.Module = (*Module)(nil)
