package trim

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/logging"
	"github.com/ytget/yt-clipper/internal/model"
)

// FFmpeg constants for clip encoding
const (
	// Video codec settings
	VideoCodec = "libx264"

	// Audio codec settings
	AudioCodec = "aac"

	// Container flags
	FastStartFlag = "+faststart"

	// Executable and I/O constants
	FFmpegCommand       = "ffmpeg"
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
	ProgressPipeTarget  = "pipe:2"
)

// Errors returned by Trim
var (
	ErrStartBeyondDuration = errors.New("start time is at or after the end of the video")
	ErrNoOutput            = errors.New("ffmpeg finished but wrote no output")
)

// Service trims local video files with ffmpeg
type Service struct {
	ffmpegPath    string
	ffprobePath   string
	encoderPreset string
	videoCRF      int
	audioBitrate  string
	outputDir     string
	removeSource  bool

	runner CommandRunner
	fs     afero.Fs
	logger log.Logger
}

// Option is a functional option for configuring Service
type Option func(*Service)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.ffmpegPath = path
		}
	}
}

// WithFFprobePath sets a custom ffprobe executable path
func WithFFprobePath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.ffprobePath = path
		}
	}
}

// WithEncoding sets the x264 preset, CRF and AAC bitrate
func WithEncoding(preset string, crf int, audioBitrate string) Option {
	return func(s *Service) {
		s.encoderPreset = preset
		s.videoCRF = crf
		s.audioBitrate = audioBitrate
	}
}

// WithOutputDir writes clips to dir instead of next to the input
func WithOutputDir(dir string) Option {
	return func(s *Service) {
		s.outputDir = dir
	}
}

// WithRemoveSource controls whether the input is deleted after trimming
func WithRemoveSource(remove bool) Option {
	return func(s *Service) {
		s.removeSource = remove
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) Option {
	return func(s *Service) {
		s.runner = runner
	}
}

// WithFs sets the filesystem used for output checks and cleanup
func WithFs(fs afero.Fs) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return func(s *Service) {
		s.logger = logging.OrNop(logger)
	}
}

// NewService creates a trimmer with the default encoding settings
func NewService(opts ...Option) *Service {
	s := &Service{
		ffmpegPath:    FFmpegCommand,
		ffprobePath:   FFprobeCommand,
		encoderPreset: config.DefaultEncoderPreset,
		videoCRF:      config.DefaultVideoCRF,
		audioBitrate:  config.DefaultAudioBitrate,
		removeSource:  true,
		runner:        &ExecCommandRunner{},
		fs:            afero.NewOsFs(),
		logger:        log.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewServiceFromOptions creates a trimmer from resolved configuration
func NewServiceFromOptions(o config.Options, logger log.Logger, extra ...Option) *Service {
	opts := []Option{
		WithFFmpegPath(o.FFmpegPath),
		WithFFprobePath(o.FFprobePath),
		WithEncoding(o.EncoderPreset, o.VideoCRF, o.AudioBitrate),
		WithOutputDir(o.DownloadDir),
		WithRemoveSource(!o.KeepFullVideo),
		WithLogger(log.With(logging.OrNop(logger), "component", "trim")),
	}
	return NewService(append(opts, extra...)...)
}

// Trim re-encodes rng of inputPath into a new mp4 and returns its path
func (s *Service) Trim(ctx context.Context, inputPath string, rng model.TimeRange, progress model.ProgressFunc) (string, error) {
	if _, err := s.fs.Stat(inputPath); err != nil {
		return "", errors.Wrapf(err, "input file does not exist: %s", inputPath)
	}

	if s.removeSource {
		defer s.removeInput(inputPath)
	}

	ffmpeg, err := s.runner.LookPath(s.ffmpegPath)
	if err != nil {
		return "", errors.Wrapf(err, "%s not found", s.ffmpegPath)
	}

	total := rng.Length()
	duration, err := s.probeDuration(ctx, inputPath)
	if err != nil {
		level.Warn(s.logger).Log("msg", "could not probe duration", "input", inputPath, "err", err)
	} else {
		if rng.Start.Duration() >= duration {
			return "", errors.Wrapf(ErrStartBeyondDuration, "start %s, duration %s", rng.Start, model.TimestampFromSeconds(int(duration.Seconds())))
		}
		if rng.End.Duration() > duration {
			level.Warn(s.logger).Log("msg", "end time past end of video", "end", rng.End.String(), "duration", duration)
			total = duration - rng.Start.Duration()
		}
	}

	outputPath := ClipOutputPath(s.outputDir, inputPath, rng)
	if err := s.fs.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", errors.Wrap(err, "failed to create output directory")
	}

	if progress != nil {
		progress(0, "Encoding "+rng.String())
	}

	monitor := newProgressMonitor(total, progress)
	args := s.BuildFFmpegArgs(inputPath, outputPath, rng)
	level.Debug(s.logger).Log("msg", "running ffmpeg", "path", ffmpeg, "args", strings.Join(args, " "))

	if err := s.runner.Run(ctx, monitor, ffmpeg, args...); err != nil {
		s.removeQuietly(outputPath)
		if ctx.Err() != nil {
			return "", errors.Wrap(ctx.Err(), "ffmpeg interrupted")
		}
		if tail := monitor.Tail(); tail != "" {
			return "", errors.Wrapf(err, "ffmpeg failed: %s", tail)
		}
		return "", errors.Wrap(err, "ffmpeg failed")
	}

	info, err := s.fs.Stat(outputPath)
	if err != nil || info.Size() == 0 {
		s.removeQuietly(outputPath)
		return "", errors.Wrap(ErrNoOutput, outputPath)
	}

	if progress != nil {
		progress(1, "")
	}
	level.Info(s.logger).Log("msg", "clip written", "output", outputPath, "bytes", info.Size())

	return outputPath, nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func (s *Service) BuildFFmpegArgs(inputPath, outputPath string, rng model.TimeRange) []string {
	return []string{
		"-y",            // Overwrite output file
		"-i", inputPath, // Input file
		"-ss", rng.Start.String(), // Clip start
		"-to", rng.End.String(), // Clip end
		"-map", "0:v:0", // First video stream
		"-map", "0:a:0?", // First audio stream, if any
		"-c:v", VideoCodec, // Video codec
		"-preset", s.encoderPreset, // Encoding preset
		"-crf", strconv.Itoa(s.videoCRF), // Constant rate factor
		"-c:a", AudioCodec, // Audio codec
		"-b:a", s.audioBitrate, // Audio bitrate
		"-movflags", FastStartFlag, // MP4 optimization
		"-shortest",
		"-progress", ProgressPipeTarget, // Progress to stderr
		"-nostats", // No stats output
		outputPath, // Output file
	}
}

// VerifyInstalled checks that ffmpeg can be found and executed
func (s *Service) VerifyInstalled(ctx context.Context) (string, error) {
	path, err := s.runner.LookPath(s.ffmpegPath)
	if err != nil {
		return "", errors.Wrapf(err, "%s not found", s.ffmpegPath)
	}

	out, err := s.runner.Output(ctx, path, "-version")
	if err != nil {
		return "", errors.Wrap(err, "ffmpeg not executable")
	}

	firstLine, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return firstLine, nil
}

// probeDuration gets the duration of a video file using ffprobe
func (s *Service) probeDuration(ctx context.Context, filePath string) (time.Duration, error) {
	ffprobe, err := s.runner.LookPath(s.ffprobePath)
	if err != nil {
		return 0, errors.Wrapf(err, "%s not found", s.ffprobePath)
	}

	output, err := s.runner.Output(ctx, ffprobe, "-v", FFprobeLogLevel, "-show_entries", FFprobeShowEntries, "-of", FFprobeOutputFormat, filePath)
	if err != nil {
		return 0, errors.Wrap(err, "failed to run ffprobe")
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse duration")
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

func (s *Service) removeInput(path string) {
	if err := s.fs.Remove(path); err != nil {
		level.Warn(s.logger).Log("msg", "failed to remove full download", "path", path, "err", err)
		return
	}
	level.Debug(s.logger).Log("msg", "removed full download", "path", path)
}

func (s *Service) removeQuietly(path string) {
	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		level.Warn(s.logger).Log("msg", "failed to remove partial output", "path", path, "err", err)
	}
}
