package scan

import (
	"context"
	"errors"
	"testing"

	"bagusgo_backend/platform/logger"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f fakeExtractor) ExtractText(context.Context, []byte) (string, error) {
	return f.text, f.err
}

type fakeNormalizer struct {
	formatted string
	degraded  bool
}

func (f fakeNormalizer) Normalize(_ context.Context, query string) string {
	if f.degraded {
		return query
	}
	return f.formatted
}

func newScanService(extractor TextExtractor, normalizer QueryNormalizer) *Service {
	return NewService(extractor, normalizer, nil, logger.New("development"))
}

func TestScanAddressNormalizesFilteredText(t *testing.T) {
	svc := newScanService(
		fakeExtractor{text: "WARUNG BU TINI\nJl. Kenanga Blok C No. 7\nBandung"},
		fakeNormalizer{formatted: "Jl. Kenanga Blok C No.7, Bandung, Indonesia"},
	)

	result, err := svc.ScanAddress(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if result.Query != "Jl. Kenanga Blok C No. 7, Bandung" {
		t.Fatalf("unexpected filtered query %q", result.Query)
	}
	if result.Address != "Jl. Kenanga Blok C No.7, Bandung, Indonesia" {
		t.Fatalf("unexpected normalized address %q", result.Address)
	}
}

func TestScanAddressDegradesToRawQueryOnGeocodeFailure(t *testing.T) {
	svc := newScanService(
		fakeExtractor{text: "Jl. Buntu No. 99"},
		fakeNormalizer{degraded: true},
	)

	result, err := svc.ScanAddress(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if result.Address != "Jl. Buntu No. 99" {
		t.Fatalf("expected raw query as address, got %q", result.Address)
	}
}

func TestScanAddressEmptyTextHaltsPipeline(t *testing.T) {
	svc := newScanService(fakeExtractor{text: "  \n "}, fakeNormalizer{})

	_, err := svc.ScanAddress(context.Background(), []byte("img"), "image/jpeg")
	if !errors.Is(err, ErrEmptyExtraction) {
		t.Fatalf("expected ErrEmptyExtraction, got %v", err)
	}
}

func TestScanAddressEngineFailureReadsAsEmptyExtraction(t *testing.T) {
	svc := newScanService(fakeExtractor{err: errors.New("tesseract exploded")}, fakeNormalizer{})

	_, err := svc.ScanAddress(context.Background(), []byte("img"), "image/jpeg")
	if !errors.Is(err, ErrEmptyExtraction) {
		t.Fatalf("expected ErrEmptyExtraction, got %v", err)
	}
}
