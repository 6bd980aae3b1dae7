package scan

import (
	"errors"
	"io"
	"net/http"

	"bagusgo_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the photo scan endpoint.
type Handler struct {
	svc           *Service
	maxImageBytes int64
}

func NewHandler(svc *Service, maxImageBytes int64) *Handler {
	return &Handler{svc: svc, maxImageBytes: maxImageBytes}
}

// ScanAddress handles POST /api/scan-address with a multipart "photo" field.
func (h *Handler) ScanAddress(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httpkit.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "multipart field 'photo' is required")
		return
	}
	if h.maxImageBytes > 0 && fileHeader.Size > h.maxImageBytes {
		httpkit.Fail(c, http.StatusRequestEntityTooLarge, "VALIDATION_ERROR", "photo too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Fail(c, http.StatusBadRequest, "BAD_REQUEST", "could not read photo")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		httpkit.Fail(c, http.StatusBadRequest, "BAD_REQUEST", "could not read photo")
		return
	}

	result, err := h.svc.ScanAddress(c.Request.Context(), image, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, ErrEmptyExtraction) {
			httpkit.Fail(c, http.StatusUnprocessableEntity, "EMPTY_EXTRACTION", "no text detected")
			return
		}
		httpkit.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to process photo")
		return
	}

	httpkit.OK(c, result)
}
