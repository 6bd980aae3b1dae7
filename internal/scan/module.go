package scan

import (
	apphttp "bagusgo_backend/internal/http"
	"bagusgo_backend/platform/config"
	"bagusgo_backend/platform/logger"
)

// Module wires the scan pipeline behind POST /api/scan-address.
type Module struct {
	handler *Handler
	storage *Storage
}

func NewModule(cfg config.ScanConfig, normalizer QueryNormalizer, log *logger.Logger) (*Module, error) {
	storage, err := NewStorage(cfg, log)
	if err != nil {
		return nil, err
	}

	extractor := NewTesseractExtractor(cfg.GetOCRLanguages())
	svc := NewService(extractor, normalizer, storage, log)

	return &Module{
		handler: NewHandler(svc, cfg.GetScanMaxImageBytes()),
		storage: storage,
	}, nil
}

func (m *Module) Name() string {
	return "scan"
}

// Storage returns the photo store so main can ensure the bucket at startup.
// Nil when retention is disabled.
func (m *Module) Storage() *Storage {
	return m.storage
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/scan-address", m.handler.ScanAddress)
}

var _ apphttp.Module = (*Module)(nil)
