package scan

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildQueryKeepsKeywordLinesInOrder(t *testing.T) {
	raw := "TOKO MAJU JAYA\nJl. Melati No. 12\nRT 03 RW 05, Kelurahan Sukamaju\nTelp 021-5551234\nJakarta Selatan"

	query, err := BuildQuery(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Jl. Melati No. 12, RT 03 RW 05, Kelurahan Sukamaju, Jakarta Selatan"
	if query != want {
		t.Fatalf("expected %q, got %q", want, query)
	}
}

func TestBuildQueryKeywordMatchIsCaseInsensitive(t *testing.T) {
	query, err := BuildQuery("kantor pusat\nJALAN SUDIRMAN KAV 21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "JALAN SUDIRMAN KAV 21" {
		t.Fatalf("expected the uppercase keyword line, got %q", query)
	}
}

func TestBuildQueryFallsBackToFirstFiveLines(t *testing.T) {
	lines := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta"}
	query, err := BuildQuery(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "alpha, beta, gamma, delta, epsilon"
	if query != want {
		t.Fatalf("expected first five lines %q, got %q", want, query)
	}
}

func TestBuildQueryFallbackUsesAllLinesWhenFewerThanFive(t *testing.T) {
	query, err := BuildQuery("satu\ndua\ntiga")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "satu, dua, tiga" {
		t.Fatalf("expected all lines joined, got %q", query)
	}
}

func TestBuildQueryEmptyTextSignalsEmptyExtraction(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n\t \n"} {
		_, err := BuildQuery(raw)
		if !errors.Is(err, ErrEmptyExtraction) {
			t.Fatalf("input %q: expected ErrEmptyExtraction, got %v", raw, err)
		}
	}
}
