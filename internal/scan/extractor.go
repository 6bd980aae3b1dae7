// Package scan turns a photographed address into a normalized query: OCR text
// extraction, address-line filtering, and lenient geocode normalization.
package scan

import (
	"context"

	"github.com/otiai10/gosseract/v2"
)

// TextExtractor produces raw multi-line text from an image. An empty string
// (not an error) is the contract for "the engine ran but found nothing";
// the filter turns that into ErrEmptyExtraction.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// TesseractExtractor runs OCR through a local Tesseract install. A fresh
// client per call keeps the extractor safe for concurrent requests; gosseract
// clients are not goroutine-safe.
type TesseractExtractor struct {
	languages []string
}

// NewTesseractExtractor builds an extractor for the given Tesseract language
// packs (e.g. "ind", "eng").
func NewTesseractExtractor(languages []string) *TesseractExtractor {
	return &TesseractExtractor{languages: languages}
}

func (e *TesseractExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(e.languages) > 0 {
		if err := client.SetLanguage(e.languages...); err != nil {
			return "", err
		}
	}

	if err := client.SetImageFromBytes(image); err != nil {
		return "", err
	}

	return client.Text()
}

var _ TextExtractor = (*TesseractExtractor)(nil)
