// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"bagusgo_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// Envelope is the standard success response format. The mobile client keys off
// the literal status value "OK".
type Envelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// StatusOK is the success marker used across all endpoints.
const StatusOK = "OK"

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK sends a 200 response with the payload wrapped in the standard envelope.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, Envelope{Status: StatusOK, Data: payload})
}

// Fail sends an error response with the given status code, code and message.
func Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Status: "error", Code: code, Message: message})
}

// HandleError maps domain errors to HTTP responses.
// Typed *apperr.Error values choose their own status and code; anything else
// falls back to 400 Bad Request. Returns true if an error was handled.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok {
		c.JSON(domainErr.HTTPStatus(), ErrorResponse{
			Status:  "error",
			Code:    domainErr.Code(),
			Message: domainErr.Message,
		})
		return true
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Message: err.Error()})
	return true
}
