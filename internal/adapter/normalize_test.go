package adapter

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalizeResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain ascii untouched",
			input: "The LM393 is a dual comparator.",
			want:  "The LM393 is a dual comparator.",
		},
		{
			name:  "en dash to hyphen",
			input: "pages 3–7",
			want:  "pages 3-7",
		},
		{
			name:  "em dash to double hyphen",
			input: "wait—it works",
			want:  "wait--it works",
		},
		{
			name:  "mixed dashes with multibyte text",
			input: "café – 2024 — test",
			want:  "café - 2024 -- test",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "valid non-ascii preserved",
			input: "온도 범위: -40°C ~ +85°C",
			want:  "온도 범위: -40°C ~ +85°C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeResponse(tt.input); got != tt.want {
				t.Errorf("NormalizeResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeResponse_InvalidUTF8(t *testing.T) {
	// A truncated multibyte sequence followed by a stray continuation byte.
	input := "abc\xff\xfedef"

	got := NormalizeResponse(input)
	if !utf8.ValidString(got) {
		t.Fatalf("NormalizeResponse(%q) = %q is not valid UTF-8", input, got)
	}
	if !strings.Contains(got, string(utf8.RuneError)) {
		t.Errorf("NormalizeResponse(%q) = %q, want replacement markers for invalid bytes", input, got)
	}
	if !strings.HasPrefix(got, "abc") || !strings.HasSuffix(got, "def") {
		t.Errorf("NormalizeResponse(%q) = %q, valid bytes must survive", input, got)
	}
}

func TestNormalizeResponse_Idempotent(t *testing.T) {
	inputs := []string{
		"café – 2024 — test",
		"plain text",
		"abc\xff\xfedef",
		"–—–",
	}

	for _, input := range inputs {
		once := NormalizeResponse(input)
		twice := NormalizeResponse(once)
		if once != twice {
			t.Errorf("NormalizeResponse not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}
