package clip

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{InvalidInput, "invalid input"},
		{DownloadFailed, "download failed"},
		{TrimFailed, "trim failed"},
		{Busy, "busy"},
		{Cancelled, "cancelled"},
		{KindUnknown, "unknown"},
		{ErrorKind(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")
	err := newError(TrimFailed, "trim", cause)

	assert.Equal(t, TrimFailed, KindOf(err))
	assert.Equal(t, TrimFailed, KindOf(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, KindUnknown, KindOf(cause))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.True(t, IsKind(err, TrimFailed))
	assert.False(t, IsKind(nil, KindUnknown))
	assert.ErrorIs(t, err, cause)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "download failed: private video", newError(DownloadFailed, "download", errors.New("private video")).Error())
	assert.Equal(t, "busy", (&Error{Kind: Busy}).Error())
}
