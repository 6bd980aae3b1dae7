package handler

import (
	"net/http"

	"bagusgo_backend/internal/addresses/service"
	"bagusgo_backend/internal/addresses/transport"
	"bagusgo_backend/platform/httpkit"
	"bagusgo_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List handles GET /api/addresses?page=&limit=
func (h *Handler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var q transport.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpkit.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "page and limit must be numbers")
		return
	}

	page, err := h.svc.List(c.Request.Context(), userID, q.Page, q.Limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.AddressPage{
		Items:   transport.ToPayloads(page.Items),
		Page:    page.Page,
		Limit:   page.Limit,
		Total:   page.Total,
		HasMore: page.HasMore,
	})
}

func (h *Handler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	req, ok := h.bindAddress(c)
	if !ok {
		return
	}

	saved, err := h.svc.Create(c.Request.Context(), userID, req.Label, req.Address, req.Lat, req.Lng)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, httpkit.Envelope{
		Status: httpkit.StatusOK,
		Data:   transport.ToPayload(saved),
	})
}

func (h *Handler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	req, ok := h.bindAddress(c)
	if !ok {
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), userID, id, req.Label, req.Address, req.Lat, req.Lng)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToPayload(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, id); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"deleted": true})
}

func (h *Handler) bindAddress(c *gin.Context) (transport.SaveAddressRequest, bool) {
	var req transport.SaveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request")
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed")
		return req, false
	}
	return req, true
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := c.MustGet(httpkit.ContextUserIDKey).(uuid.UUID)
	if !ok {
		httpkit.Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid address id")
		return uuid.Nil, false
	}
	return id, true
}
