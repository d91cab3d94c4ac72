package clip

import (
	"github.com/go-kit/log"

	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/download"
	"github.com/ytget/yt-clipper/internal/trim"
)

// NewControllerFromOptions wires the ytdlp downloader and the ffmpeg trimmer
// configured by o into a controller.
func NewControllerFromOptions(o config.Options, logger log.Logger) *Controller {
	o.Normalize()

	return NewController(
		download.NewService(o, logger),
		trim.NewServiceFromOptions(o, logger),
		logger,
	)
}
