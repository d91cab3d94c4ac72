package model

import (
	"strings"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Timestamp
		wantErr bool
		errMsg  string
	}{
		{name: "valid timestamp", input: "01:30:45", want: Timestamp{Hours: 1, Minutes: 30, Seconds: 45}},
		{name: "all zeros", input: "00:00:00", want: Timestamp{}},
		{name: "surrounding spaces", input: "  00:00:10 ", want: Timestamp{Seconds: 10}},
		{name: "max minutes and seconds", input: "23:59:59", want: Timestamp{Hours: 23, Minutes: 59, Seconds: 59}},
		{name: "missing leading zero", input: "1:30:45", wantErr: true, errMsg: "invalid timestamp format"},
		{name: "wrong separator", input: "01-30-45", wantErr: true, errMsg: "invalid timestamp format"},
		{name: "too few parts", input: "01:30", wantErr: true, errMsg: "invalid timestamp format"},
		{name: "empty string", input: "", wantErr: true, errMsg: "invalid timestamp format"},
		{name: "letters", input: "aa:bb:cc", wantErr: true, errMsg: "invalid timestamp format"},
		{name: "minutes too high", input: "01:60:00", wantErr: true, errMsg: "minutes must be 0-59"},
		{name: "seconds too high", input: "01:30:60", wantErr: true, errMsg: "seconds must be 0-59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimestamp(%q) expected error, got %v", tt.input, got)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ParseTimestamp(%q) error = %v, expected to contain %q", tt.input, err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %+v, expected %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimestamp_Formatting(t *testing.T) {
	ts := Timestamp{Hours: 1, Minutes: 2, Seconds: 3}

	if ts.String() != "01:02:03" {
		t.Errorf("String() = %s, expected 01:02:03", ts.String())
	}
	if ts.FilenameString() != "01-02-03" {
		t.Errorf("FilenameString() = %s, expected 01-02-03", ts.FilenameString())
	}
	if ts.TotalSeconds() != 3723 {
		t.Errorf("TotalSeconds() = %d, expected 3723", ts.TotalSeconds())
	}
	if ts.Duration() != time.Hour+2*time.Minute+3*time.Second {
		t.Errorf("Duration() = %v", ts.Duration())
	}
}

func TestTimestampFromSeconds(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{-5, "00:00:00"},
		{0, "00:00:00"},
		{59, "00:00:59"},
		{61, "00:01:01"},
		{3661, "01:01:01"},
	}

	for _, test := range tests {
		result := TimestampFromSeconds(test.seconds).String()
		if result != test.expected {
			t.Errorf("TimestampFromSeconds(%d) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestNewTimeRange(t *testing.T) {
	start := Timestamp{Seconds: 5}
	end := Timestamp{Seconds: 10}

	rng, err := NewTimeRange(start, end)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rng.Length() != 5*time.Second {
		t.Errorf("Length() = %v, expected 5s", rng.Length())
	}
	if rng.String() != "00:00:05-00:00:10" {
		t.Errorf("String() = %s", rng.String())
	}

	if _, err := NewTimeRange(end, start); err == nil {
		t.Error("Expected error when start is after end")
	}

	if _, err := NewTimeRange(start, start); err == nil {
		t.Error("Expected error when start equals end")
	}
}
