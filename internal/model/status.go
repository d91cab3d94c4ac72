package model

// TaskStatus represents the stage a clip task is in
type TaskStatus string

const (
	// TaskStatusPending means the task was created but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusValidating means the request is being checked
	TaskStatusValidating TaskStatus = "Validating"

	// TaskStatusDownloading means the download collaborator is running
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusTrimming means the trim collaborator is running
	TaskStatusTrimming TaskStatus = "Trimming"

	// TaskStatusCancelled means the task was stopped by the user
	TaskStatusCancelled TaskStatus = "Cancelled"

	// TaskStatusCompleted means the clip was written successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusValidating || ts == TaskStatusDownloading || ts == TaskStatusTrimming
}

// IsFinished returns true if the task is in a finished state (completed, cancelled, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusCancelled || ts == TaskStatusError
}
