package clip

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ytget/yt-clipper/internal/model"
)

// Validation errors
var (
	ErrEmptyURL   = errors.New("URL is empty")
	ErrInvalidURL = errors.New("URL must be an absolute http or https address")
)

// ValidateRequest checks the URL and parses the time range. It makes no
// network or process calls.
func ValidateRequest(req model.ClipRequest) (model.TimeRange, error) {
	if err := ValidateURL(req.URL); err != nil {
		return model.TimeRange{}, err
	}

	start, err := model.ParseTimestamp(req.Start)
	if err != nil {
		return model.TimeRange{}, fmt.Errorf("start time: %w", err)
	}

	end, err := model.ParseTimestamp(req.End)
	if err != nil {
		return model.TimeRange{}, fmt.Errorf("end time: %w", err)
	}

	return model.NewTimeRange(start, end)
}

// ValidateURL accepts absolute http(s) URLs with a host
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrEmptyURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}
	if u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}
