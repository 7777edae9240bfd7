package parser

import (
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"local", "01012345678", "201012345678", true},
		{"international with plus", "+201012345678", "201012345678", true},
		{"international without plus", "201012345678", "201012345678", true},
		{"bare subscriber", "1012345678", "201012345678", true},
		{"embedded in text", "call me at 01511112222 thanks", "201511112222", true},
		{"leftmost match wins", "01012345678 or 01198765432", "201012345678", true},
		{"spaced out digits", "+20 101 234 5678", "", false},
		{"operator 011", "01198765432", "201198765432", true},
		{"operator 012", "01234567890", "201234567890", true},
		{"operator 015", "01512345678", "201512345678", true},
		{"empty", "", "", false},
		{"no digits", "not a phone", "", false},
		{"ten digits after leading zero", "0101234567", "", false},
		{"eleven digits with 20 prefix", "20101234567", "", false},
		{"landline", "0223456789", "", false},
		{"too short", "0101", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePhone(tt.input)
			if ok != tt.ok {
				t.Fatalf("NormalizePhone(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhoneCanonicalShape(t *testing.T) {
	inputs := []string{
		"01012345678", "+201012345678", "201012345678", "1012345678",
		"notes: 01198765432 (work)", "  01512345678  ",
	}

	for _, in := range inputs {
		got, ok := NormalizePhone(in)
		if !ok {
			t.Fatalf("NormalizePhone(%q) unexpectedly failed", in)
		}
		if len(got) != 12 {
			t.Errorf("NormalizePhone(%q) = %q, want length 12", in, got)
		}
		if !strings.HasPrefix(got, "201") {
			t.Errorf("NormalizePhone(%q) = %q, want prefix 201", in, got)
		}
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	// Normalizing the display form of a normalized number must yield the
	// same number again.
	first, ok := NormalizePhone("01012345678")
	if !ok {
		t.Fatal("NormalizePhone failed on valid input")
	}

	second, ok := NormalizePhone("+" + first)
	if !ok {
		t.Fatal("NormalizePhone failed on its own display form")
	}
	if second != first {
		t.Errorf("round trip changed the number: %q then %q", first, second)
	}
}
