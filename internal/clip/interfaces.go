package clip

import (
	"context"

	"github.com/ytget/yt-clipper/internal/model"
)

// Downloader fetches a video and returns the path of the local file.
type Downloader interface {
	Download(ctx context.Context, url string, progress model.ProgressFunc) (string, error)
}

// Trimmer cuts inputPath to rng and returns the path of the clip.
type Trimmer interface {
	Trim(ctx context.Context, inputPath string, rng model.TimeRange, progress model.ProgressFunc) (string, error)
}
