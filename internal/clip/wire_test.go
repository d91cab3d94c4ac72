package clip

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/model"
)

func TestNewControllerFromOptions_RejectsInvalidInputBeforeNetwork(t *testing.T) {
	opts := config.DefaultOptions()
	opts.DownloadDir = t.TempDir()

	c := NewControllerFromOptions(opts, nil)
	require.NotNil(t, c)
	assert.False(t, c.Running())

	_, err := c.Execute(context.Background(), model.ClipRequest{URL: "not-a-url", Start: "00:00:00", End: "00:00:10"})
	assert.True(t, IsKind(err, InvalidInput))
}
