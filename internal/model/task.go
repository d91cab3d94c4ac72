package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskIDPrefix prefixes every clip task ID
const TaskIDPrefix = "clip-"

// ClipRequest is a single user submission: the video URL and the range to keep.
// Values are kept as entered; the controller validates them.
type ClipRequest struct {
	URL   string
	Start string
	End   string
}

// ClipTask is a snapshot of a request moving through the pipeline
type ClipTask struct {
	ID         string
	Request    ClipRequest
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0 within the current stage
	Percent    int     // 0 to 100
	Message    string  // latest human readable status line
	Title      string  // video title, when known
	SourcePath string  // full download
	OutputPath string  // trimmed clip
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewClipTask creates a pending task for the request
func NewClipTask(req ClipRequest) *ClipTask {
	return &ClipTask{
		ID:        generateTaskID(),
		Request:   req,
		Status:    TaskStatusPending,
		StartedAt: time.Now(),
	}
}

// Clone returns a copy safe to hand to another goroutine
func (ct *ClipTask) Clone() *ClipTask {
	c := *ct
	return &c
}

// SetProgress stores a 0..1 stage progress and the derived percentage
func (ct *ClipTask) SetProgress(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	ct.Progress = progress
	ct.Percent = int(progress * 100)
}

// Elapsed returns how long the task has been running, or ran
func (ct *ClipTask) Elapsed() time.Duration {
	if ct.StartedAt.IsZero() {
		return 0
	}
	if ct.FinishedAt.IsZero() {
		return time.Since(ct.StartedAt)
	}
	return ct.FinishedAt.Sub(ct.StartedAt)
}

// GetDisplayTitle returns title, output filename, or URL in order of preference
func (ct *ClipTask) GetDisplayTitle() string {
	if ct.Title != "" && !strings.HasPrefix(ct.Title, "http") {
		return ct.Title
	}

	if ct.OutputPath != "" {
		// Support both / and \ separators
		parts := strings.FieldsFunc(ct.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return ct.Request.URL
}

// generateTaskID generates a unique, time ordered task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}

// ProgressFunc receives stage progress from a collaborator. A negative
// fraction means the total is unknown; message may be empty.
type ProgressFunc func(fraction float64, message string)
