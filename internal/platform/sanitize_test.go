package platform

import (
	"strings"
	"testing"
	"time"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Simple Title", "Simple Title"},
		{"AC/DC: Back in Black", "AC_DC_ Back in Black"},
		{"What? Why*", "What_ Why"},
		{"  __leading and trailing__  ", "leading and trailing"},
		{"Ünïcödé 🎵 song", "ncd  song"},
		{"", FallbackTitle},
		{"🎵🎵🎵", FallbackTitle},
		{"<>", FallbackTitle},
	}

	for _, test := range tests {
		result := SanitizeTitle(test.title)
		if result != test.expected {
			t.Errorf("SanitizeTitle(%q) = %q, expected %q", test.title, result, test.expected)
		}
	}
}

func TestSanitizeTitle_Truncates(t *testing.T) {
	long := strings.Repeat("a", MaxTitleLength+50)

	result := SanitizeTitle(long)
	if len(result) != MaxTitleLength {
		t.Errorf("Expected length %d, got %d", MaxTitleLength, len(result))
	}
}

func TestTimestampedTitle(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	result := TimestampedTitle(now)
	if result != "yt_video_20250304_050607" {
		t.Errorf("TimestampedTitle() = %s", result)
	}
}
