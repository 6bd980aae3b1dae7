package scan

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyExtraction means OCR produced no usable text. The pipeline halts
// here; no fallback query is attempted.
var ErrEmptyExtraction = errors.New("no text detected")

// addressKeywords matches common Indonesian address vocabulary: street and
// alley markers, block/unit markers, administrative-area words, major city
// names, and the country name.
var addressKeywords = regexp.MustCompile(`(?i)(jalan|jl\.|jl\s|gg\.|gang|blok|no\.|kav|rt|rw|kelurahan|kecamatan|jakarta|bandung|surabaya|indonesia)`)

const fallbackLineCount = 5

// BuildQuery selects the address-bearing lines from raw OCR text and joins
// them into a single geocoder query, preserving original line order. When no
// line matches the keyword set, the first five lines are used instead:
// address text usually sits near the top or bottom of a photographed
// document, and five lines is a pragmatic cap against feeding the geocoder an
// entire unrelated page.
func BuildQuery(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyExtraction
	}

	lines := strings.Split(raw, "\n")

	var relevant []string
	for _, line := range lines {
		if addressKeywords.MatchString(line) {
			relevant = append(relevant, line)
		}
	}

	if len(relevant) > 0 {
		return strings.Join(relevant, ", "), nil
	}

	if len(lines) > fallbackLineCount {
		lines = lines[:fallbackLineCount]
	}
	return strings.Join(lines, ", "), nil
}
