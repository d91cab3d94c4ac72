package download

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/logging"
	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
)

// Output constants
const (
	FullSuffix = "_full"
	OutputExt  = "mp4"

	// PartialSuffix is appended by ytdlp to the file being written; it is
	// renamed to the output path only when the download completes.
	PartialSuffix = ".tmp"
)

// Format selectors understood by ytdlp
const (
	FormatBest   = "best"
	FormatMedium = "height<=720"
	FormatLow    = "height<=480"
)

// clientVersions pins the Innertube client versions sent with each client name.
// Clients not listed use the library default.
var clientVersions = map[string]string{
	"ANDROID": "20.10.38",
	"IOS":     "20.10.4",
	"WEB":     "2.20250312.04.00",
	"MWEB":    "2.20250312.04.00",
	"TVHTML5": "7.20250312.16.00",
}

// FormatSelector maps a quality preset to a ytdlp format selector
func FormatSelector(preset config.QualityPreset) string {
	switch preset {
	case config.QualityMedium:
		return FormatMedium
	case config.QualityLow:
		return FormatLow
	default:
		return FormatBest
	}
}

// Service downloads videos with a player-client fallback chain
type Service struct {
	outputDir string
	format    string
	clients   []string

	source videoSource
	fs     afero.Fs
	logger log.Logger
	now    func() time.Time
}

// NewService creates a download service from resolved configuration
func NewService(o config.Options, logger log.Logger) *Service {
	logger = log.With(logging.OrNop(logger), "component", "download")

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = o.HTTPRetries
	httpClient.HTTPClient.Timeout = o.HTTPTimeout
	httpClient.Logger = logging.NewLeveledLogger(logger)

	return newService(o, logger, &ytdlpSource{httpClient: httpClient.StandardClient()}, afero.NewOsFs())
}

func newService(o config.Options, logger log.Logger, source videoSource, fs afero.Fs) *Service {
	return &Service{
		outputDir: o.DownloadDir,
		format:    FormatSelector(o.Quality),
		clients:   config.NormalizePlayerClients(o.PlayerClients),
		source:    source,
		fs:        fs,
		logger:    logging.OrNop(logger),
		now:       time.Now,
	}
}

// Attempts returns the fallback chain in the order it is tried
func (s *Service) Attempts() []Attempt {
	return lo.Map(s.clients, func(client string, _ int) Attempt {
		return Attempt{
			Client:  client,
			Version: clientVersions[client],
			Format:  s.format,
			Ext:     OutputExt,
		}
	})
}

// Download fetches url into the output directory and returns the file path
func (s *Service) Download(ctx context.Context, url string, progress model.ProgressFunc) (string, error) {
	if err := s.fs.MkdirAll(s.outputDir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create download directory %s", s.outputDir)
	}

	var failures []AttemptError
	for _, attempt := range s.Attempts() {
		if err := ctx.Err(); err != nil {
			return "", errors.Wrap(err, "download interrupted")
		}

		level.Info(s.logger).Log("msg", "download attempt", "client", attempt.Client, "format", attempt.Format, "url", url)
		path, err := s.try(ctx, url, attempt, progress)
		if err == nil {
			level.Info(s.logger).Log("msg", "download finished", "client", attempt.Client, "path", path)
			return path, nil
		}

		level.Warn(s.logger).Log("msg", "download attempt failed", "client", attempt.Client, "reason", FailureReason(err), "err", err)
		if ctx.Err() != nil {
			return "", errors.Wrap(ctx.Err(), "download interrupted")
		}
		failures = append(failures, AttemptError{Client: attempt.Client, Err: err})
	}

	return "", &AttemptsError{Attempts: failures}
}

// try resolves metadata, picks the output name and downloads with one client
func (s *Service) try(ctx context.Context, url string, attempt Attempt, progress model.ProgressFunc) (string, error) {
	info, err := s.source.Resolve(ctx, url, attempt)
	if err != nil {
		return "", err
	}

	title := ""
	if info != nil {
		title = info.Title
	}
	outputPath := s.OutputPath(title)

	if progress != nil {
		progress(0, fmt.Sprintf("Downloading %q via %s", strings.TrimSpace(title), attempt.Client))
	}

	// ytdlp appends to an existing .tmp file, so a leftover from an earlier
	// attempt or request must not be resumed.
	s.removeFile(outputPath + PartialSuffix)

	tracker := &progressTracker{progress: progress, started: s.now(), now: s.now}
	if err := s.source.Fetch(ctx, url, attempt, outputPath, tracker.update); err != nil {
		s.removePartial(outputPath)
		return "", err
	}

	stat, err := s.fs.Stat(outputPath)
	if err != nil || stat.Size() == 0 {
		s.removePartial(outputPath)
		return "", errors.Errorf("no file written to %s", outputPath)
	}

	return outputPath, nil
}

// OutputPath returns <dir>/<sanitized title>_full.mp4, falling back to a
// timestamped name when the title is empty.
func (s *Service) OutputPath(title string) string {
	stem := platform.TimestampedTitle(s.now())
	if strings.TrimSpace(title) != "" {
		stem = platform.SanitizeTitle(title)
	}
	return filepath.Join(s.outputDir, stem+FullSuffix+"."+OutputExt)
}

// removePartial deletes what a failed attempt left behind: the library's
// in-progress file and anything already renamed into place.
func (s *Service) removePartial(outputPath string) {
	s.removeFile(outputPath + PartialSuffix)
	s.removeFile(outputPath)
}

func (s *Service) removeFile(path string) {
	exists, err := afero.Exists(s.fs, path)
	if err != nil || !exists {
		return
	}
	if err := s.fs.Remove(path); err != nil {
		level.Warn(s.logger).Log("msg", "failed to remove partial download", "path", path, "err", err)
	}
}

// progressTracker turns byte counts into stage progress and a speed line
type progressTracker struct {
	progress model.ProgressFunc
	started  time.Time
	now      func() time.Time
}

func (t *progressTracker) update(p ytdlp.Progress) {
	if t.progress == nil {
		return
	}

	message := platform.FormatFileSize(p.DownloadedSize)
	if p.TotalSize > 0 {
		message += " / " + platform.FormatFileSize(p.TotalSize)
	}
	if elapsed := t.now().Sub(t.started).Seconds(); elapsed > 0 {
		message += fmt.Sprintf(" (%.1fMB/s)", float64(p.DownloadedSize)/elapsed/1024/1024)
	}

	fraction := -1.0
	if p.TotalSize > 0 {
		fraction = p.Percent / 100
	}
	t.progress(fraction, message)
}
