package download

import (
	"context"
	"net/http"

	"github.com/ytget/ytdlp/v2"
)

// Attempt is one try of the fallback chain
type Attempt struct {
	Client  string
	Version string
	Format  string
	Ext     string
}

// videoSource is the part of the ytdlp API the service relies on
type videoSource interface {
	Resolve(ctx context.Context, url string, attempt Attempt) (*ytdlp.VideoInfo, error)
	Fetch(ctx context.Context, url string, attempt Attempt, outputPath string, progress func(ytdlp.Progress)) error
}

// ytdlpSource calls the library with a shared HTTP client
type ytdlpSource struct {
	httpClient *http.Client
}

func (s *ytdlpSource) downloader(attempt Attempt) *ytdlp.Downloader {
	return ytdlp.New().
		WithFormat(attempt.Format, attempt.Ext).
		WithInnertubeClient(attempt.Client, attempt.Version).
		WithHTTPClient(s.httpClient)
}

func (s *ytdlpSource) Resolve(ctx context.Context, url string, attempt Attempt) (*ytdlp.VideoInfo, error) {
	_, info, err := s.downloader(attempt).ResolveURL(ctx, url)
	return info, err
}

func (s *ytdlpSource) Fetch(ctx context.Context, url string, attempt Attempt, outputPath string, progress func(ytdlp.Progress)) error {
	_, err := s.downloader(attempt).
		WithOutputPath(outputPath).
		WithProgress(progress).
		Download(ctx, url)
	return err
}
