package handler

import (
	"net/http"

	"bagusgo_backend/internal/auth/service"
	"bagusgo_backend/internal/auth/transport"
	"bagusgo_backend/platform/httpkit"
	"bagusgo_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/register", h.Register)
}

func (h *Handler) Login(c *gin.Context) {
	req, ok := h.bindCredentials(c)
	if !ok {
		return
	}

	session, err := h.svc.Login(c.Request.Context(), req.PhoneNumber, req.Password)
	if httpkit.HandleError(c, err) {
		return
	}

	respondSession(c, session)
}

func (h *Handler) Register(c *gin.Context) {
	req, ok := h.bindCredentials(c)
	if !ok {
		return
	}

	session, err := h.svc.Register(c.Request.Context(), req.PhoneNumber, req.Password)
	if httpkit.HandleError(c, err) {
		return
	}

	respondSession(c, session)
}

func (h *Handler) bindCredentials(c *gin.Context) (transport.CredentialsRequest, bool) {
	var req transport.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Fail(c, http.StatusBadRequest, "BAD_REQUEST", msgInvalidRequest)
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", msgValidationFailed)
		return req, false
	}
	return req, true
}

func respondSession(c *gin.Context, session service.Session) {
	httpkit.JSON(c, http.StatusOK, transport.AuthResponse{
		Status: httpkit.StatusOK,
		Token:  session.Token,
		User: &transport.UserPayload{
			ID:          session.UserID.String(),
			PhoneNumber: session.PhoneNumber,
		},
	})
}
