package phone

import "testing"

func TestNormalizeE164LocalIndonesianNumber(t *testing.T) {
	got := NormalizeE164("0812 3456 7890")
	if got != "+6281234567890" {
		t.Fatalf("expected +6281234567890, got %q", got)
	}
}

func TestNormalizeE164AlreadyInternational(t *testing.T) {
	got := NormalizeE164("+6281234567890")
	if got != "+6281234567890" {
		t.Fatalf("expected unchanged E.164 number, got %q", got)
	}
}

func TestNormalizeE164InvalidInputReturnsTrimmed(t *testing.T) {
	got := NormalizeE164("  not-a-number  ")
	if got != "not-a-number" {
		t.Fatalf("expected trimmed input back, got %q", got)
	}
}

func TestNormalizeE164Empty(t *testing.T) {
	if got := NormalizeE164("   "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
