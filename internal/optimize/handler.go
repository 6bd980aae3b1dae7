package optimize

import (
	"context"
	"errors"
	"net/http"

	"bagusgo_backend/platform/apperr"
	"bagusgo_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubscriptionChecker gates route optimization behind an active
// subscription. Implemented by the auth service.
type SubscriptionChecker interface {
	SubscriptionActive(ctx context.Context, userID uuid.UUID) (bool, error)
}

type Handler struct {
	svc  *Service
	subs SubscriptionChecker
}

func NewHandler(svc *Service, subs SubscriptionChecker) *Handler {
	return &Handler{svc: svc, subs: subs}
}

// OptimizeRoute handles POST /api/optimize-route. Expired subscriptions
// get a dedicated 403 so clients can route the user to the paywall
// instead of a generic error screen.
func (h *Handler) OptimizeRoute(c *gin.Context) {
	userID, ok := c.MustGet(httpkit.ContextUserIDKey).(uuid.UUID)
	if !ok {
		httpkit.Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	active, err := h.subs.SubscriptionActive(c.Request.Context(), userID)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	if !active {
		httpkit.HandleError(c, apperr.SubscriptionExpired("subscription expired"))
		return
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "origin and at least one destination are required")
		return
	}

	items, err := h.svc.Optimize(c.Request.Context(), req.Origin, req.Destinations)
	if err != nil {
		respondOptimizeError(c, err)
		return
	}

	httpkit.OK(c, items)
}

func respondOptimizeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProviderMisconfigured):
		httpkit.Fail(c, http.StatusInternalServerError, "PROVIDER_MISCONFIGURED", "route service not configured")
	case errors.Is(err, ErrNoRoute):
		httpkit.Fail(c, http.StatusUnprocessableEntity, "NO_ROUTE_FOUND", "no drivable route through these addresses")
	default:
		httpkit.Fail(c, http.StatusBadGateway, "UPSTREAM_ERROR", "route service unavailable")
	}
}
