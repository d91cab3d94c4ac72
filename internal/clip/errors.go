package clip

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why Execute failed
type ErrorKind int

const (
	// KindUnknown is returned by KindOf for errors not produced by this package
	KindUnknown ErrorKind = iota

	// InvalidInput means the URL or the timestamps were rejected
	InvalidInput

	// DownloadFailed means the download collaborator returned an error
	DownloadFailed

	// TrimFailed means the trim collaborator returned an error
	TrimFailed

	// Busy means another request was still running
	Busy

	// Cancelled means the caller's context ended before the clip was written
	Cancelled
)

// ErrBusy is the cause carried by Busy errors
var ErrBusy = errors.New("another request is already running")

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case DownloadFailed:
		return "download failed"
	case TrimFailed:
		return "trim failed"
	case Busy:
		return "busy"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Error is the error type returned by Controller.Execute
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind of err, or KindUnknown
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
