package platform

import (
	"regexp"
	"strings"
)

var youTubeURLRegex = regexp.MustCompile(`^(https?://)?(www\.|m\.)?(youtube\.com|youtu\.be)/.+$`)

// IsYouTubeURL reports whether s looks like a YouTube video link. It is a UI
// hint only; the downloader decides what it supports.
func IsYouTubeURL(s string) bool {
	return youTubeURLRegex.MatchString(strings.TrimSpace(s))
}

// CleanURL strips line breaks and tabs pasted along with a URL
func CleanURL(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}
