package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a position in a video in HH:MM:SS form
type Timestamp struct {
	Hours   int
	Minutes int
	Seconds int
}

var timestampRegex = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)

// ParseTimestamp parses a timestamp string in HH:MM:SS format
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	matches := timestampRegex.FindStringSubmatch(s)
	if matches == nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp format %q: expected HH:MM:SS", s)
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])

	if minutes > 59 {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: minutes must be 0-59", s)
	}
	if seconds > 59 {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: seconds must be 0-59", s)
	}

	return Timestamp{Hours: hours, Minutes: minutes, Seconds: seconds}, nil
}

// TimestampFromSeconds builds a Timestamp from a number of seconds
func TimestampFromSeconds(total int) Timestamp {
	if total < 0 {
		total = 0
	}
	return Timestamp{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// String returns the timestamp in HH:MM:SS format
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// FilenameString returns the timestamp as HH-MM-SS, safe for file names
func (t Timestamp) FilenameString() string {
	return fmt.Sprintf("%02d-%02d-%02d", t.Hours, t.Minutes, t.Seconds)
}

// TotalSeconds returns the timestamp as total seconds
func (t Timestamp) TotalSeconds() int {
	return t.Hours*3600 + t.Minutes*60 + t.Seconds
}

// Duration returns the offset as a time.Duration
func (t Timestamp) Duration() time.Duration {
	return time.Duration(t.TotalSeconds()) * time.Second
}

// Before returns true if t is before other
func (t Timestamp) Before(other Timestamp) bool {
	return t.TotalSeconds() < other.TotalSeconds()
}

// After returns true if t is after other
func (t Timestamp) After(other Timestamp) bool {
	return t.TotalSeconds() > other.TotalSeconds()
}

// TimeRange is a validated [Start, End) interval of a video
type TimeRange struct {
	Start Timestamp
	End   Timestamp
}

// NewTimeRange returns a range or an error when start is not before end
func NewTimeRange(start, end Timestamp) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, fmt.Errorf("end time %s must be after start time %s", end, start)
	}
	return TimeRange{Start: start, End: end}, nil
}

// Length returns the duration covered by the range
func (r TimeRange) Length() time.Duration {
	return r.End.Duration() - r.Start.Duration()
}

// String returns the range as "HH:MM:SS-HH:MM:SS"
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
