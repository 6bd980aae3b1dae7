package scan

import (
	"context"

	"bagusgo_backend/platform/logger"
)

// QueryNormalizer is the lenient geocode boundary: it returns either the
// provider's formatted address or the query unchanged, never an error.
// The geocode service's Normalize method satisfies it.
type QueryNormalizer interface {
	Normalize(ctx context.Context, query string) string
}

// Result is the outcome of a scan: the filtered OCR query and the address the
// geocoder settled on (equal to Query when the geocoder degraded).
type Result struct {
	Query   string `json:"query"`
	Address string `json:"address"`
	Photo   string `json:"photo,omitempty"`
}

// Service runs the photo-to-address pipeline.
type Service struct {
	extractor  TextExtractor
	normalizer QueryNormalizer
	storage    *Storage
	log        *logger.Logger
}

func NewService(extractor TextExtractor, normalizer QueryNormalizer, storage *Storage, log *logger.Logger) *Service {
	return &Service{extractor: extractor, normalizer: normalizer, storage: storage, log: log}
}

// ScanAddress extracts text from the image, filters it down to the likely
// address lines, and normalizes the result through the geocoder. The only
// hard failure is ErrEmptyExtraction: when OCR finds nothing the user must be
// told, not handed a fabricated query. Geocoder trouble degrades to the
// filtered raw text so the user can edit it by hand.
func (s *Service) ScanAddress(ctx context.Context, image []byte, contentType string) (Result, error) {
	raw, err := s.extractor.ExtractText(ctx, image)
	if err != nil {
		s.log.Error("ocr extraction failed", "error", err)
		// An engine failure reads the same as an empty photo to the user.
		return Result{}, ErrEmptyExtraction
	}

	query, err := BuildQuery(raw)
	if err != nil {
		return Result{}, err
	}

	address := s.normalizer.Normalize(ctx, query)
	photo := s.storage.SavePhoto(ctx, image, contentType)

	return Result{Query: query, Address: address, Photo: photo}, nil
}
