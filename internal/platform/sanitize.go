package platform

import (
	"fmt"
	"strings"
	"time"
)

// Filename limits
const (
	MaxTitleLength   = 100
	FallbackTitle    = "youtube_video"
	illegalFileChars = `<>:"/\|?*`
)

// SanitizeTitle turns a video title into a safe file name stem: illegal
// characters become underscores, anything outside letters, digits, space,
// '-' and '_' is dropped and the result is capped at MaxTitleLength.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case strings.ContainsRune(illegalFileChars, r):
			b.WriteRune('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}

	safe := strings.Trim(b.String(), " _")
	if len(safe) > MaxTitleLength {
		safe = strings.TrimRight(safe[:MaxTitleLength], " _")
	}
	if safe == "" {
		return FallbackTitle
	}
	return safe
}

// TimestampedTitle is used when the video title cannot be fetched
func TimestampedTitle(now time.Time) string {
	return fmt.Sprintf("yt_video_%s", now.Format("20060102_150405"))
}
