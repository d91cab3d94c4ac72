package model

import (
	"strings"
	"testing"
	"time"
)

func TestNewClipTask(t *testing.T) {
	req := ClipRequest{URL: "https://youtu.be/abc123", Start: "00:00:05", End: "00:00:10"}
	task := NewClipTask(req)

	if task.Status != TaskStatusPending {
		t.Errorf("Expected status to be Pending, got %s", task.Status)
	}

	if task.Request != req {
		t.Errorf("Expected request %+v, got %+v", req, task.Request)
	}

	if !strings.HasPrefix(task.ID, TaskIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", TaskIDPrefix, task.ID)
	}

	// clip- + 36 chars for UUID
	if len(task.ID) != len(TaskIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(TaskIDPrefix)+36, len(task.ID), task.ID)
	}

	if task.StartedAt.IsZero() {
		t.Error("Expected StartedAt to be set")
	}
}

func TestGenerateTaskID_Unique(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}
}

func TestClipTask_SetProgress(t *testing.T) {
	tests := []struct {
		progress        float64
		expectedPercent int
		expectedValue   float64
	}{
		{-0.5, 0, 0},
		{0, 0, 0},
		{0.42, 42, 0.42},
		{1, 100, 1},
		{1.7, 100, 1},
	}

	for _, test := range tests {
		task := &ClipTask{}
		task.SetProgress(test.progress)
		if task.Percent != test.expectedPercent || task.Progress != test.expectedValue {
			t.Errorf("SetProgress(%v) = (%v, %d), expected (%v, %d)",
				test.progress, task.Progress, task.Percent, test.expectedValue, test.expectedPercent)
		}
	}
}

func TestClipTask_Clone(t *testing.T) {
	task := NewClipTask(ClipRequest{URL: "https://youtu.be/abc123"})
	clone := task.Clone()
	clone.Status = TaskStatusCompleted

	if task.Status == TaskStatusCompleted {
		t.Error("Mutating the clone must not change the original")
	}
}

func TestClipTask_Elapsed(t *testing.T) {
	start := time.Now().Add(-time.Minute)
	task := &ClipTask{StartedAt: start, FinishedAt: start.Add(10 * time.Second)}

	if task.Elapsed() != 10*time.Second {
		t.Errorf("Elapsed() = %v, expected 10s", task.Elapsed())
	}

	if (&ClipTask{}).Elapsed() != 0 {
		t.Error("Elapsed() of an unstarted task should be zero")
	}
}

func TestClipTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title      string
		outputPath string
		url        string
		expected   string
	}{
		{"Video Title", "", "https://youtu.be/abc123", "Video Title"},
		{"", "/home/u/Downloads/My_Clip_clip_00-00-05_to_00-00-10.mp4", "https://youtu.be/abc123", "My_Clip_clip_00-00-05_to_00-00-10"},
		{"", `C:\clips\video.mp4`, "https://youtu.be/abc123", "video"},
		{"", "", "https://youtu.be/abc123", "https://youtu.be/abc123"},
		{"https://youtu.be/abc123", "", "https://youtu.be/abc123", "https://youtu.be/abc123"},
	}

	for _, test := range tests {
		task := &ClipTask{
			Title:      test.title,
			OutputPath: test.outputPath,
			Request:    ClipRequest{URL: test.url},
		}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title=%q, output=%q = %q, expected %q",
				test.title, test.outputPath, result, test.expected)
		}
	}
}
