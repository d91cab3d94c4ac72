package config

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/ytget/yt-clipper/internal/logging"
	"github.com/ytget/yt-clipper/internal/platform"
)

// QualityPreset selects which stream the downloader fetches
type QualityPreset string

const (
	QualityBest   QualityPreset = "best"
	QualityMedium QualityPreset = "medium"
	QualityLow    QualityPreset = "low"
)

// Default values
const (
	DefaultQualityPreset = QualityBest
	DefaultEncoderPreset = "veryslow"
	DefaultVideoCRF      = 18
	DefaultAudioBitrate  = "256k"
	DefaultHTTPRetries   = 10
	DefaultHTTPTimeout   = 30 * time.Second
	DefaultLanguage      = "system"
	FallbackDownloadDir  = "/tmp/YouTubeClips"
)

// CRF bounds accepted by libx264
const (
	MinVideoCRF = 0
	MaxVideoCRF = 51
)

// DefaultPlayerClients is the order in which Innertube clients are tried
var DefaultPlayerClients = []string{"ANDROID", "WEB", "IOS"}

// EncoderPresets lists the x264 presets offered in settings
var EncoderPresets = []string{"ultrafast", "superfast", "veryfast", "faster", "fast", "medium", "slow", "slower", "veryslow"}

// Options is the resolved configuration consumed by the services. Both the GUI
// preferences and the CLI YAML file produce it.
type Options struct {
	DownloadDir   string         `yaml:"download_dir"`
	Quality       QualityPreset  `yaml:"quality"`
	KeepFullVideo bool           `yaml:"keep_full_video"`
	FFmpegPath    string         `yaml:"ffmpeg_path"`
	FFprobePath   string         `yaml:"ffprobe_path"`
	EncoderPreset string         `yaml:"encoder_preset"`
	VideoCRF      int            `yaml:"video_crf"`
	AudioBitrate  string         `yaml:"audio_bitrate"`
	PlayerClients []string       `yaml:"player_clients"`
	HTTPRetries   int            `yaml:"http_retries"`
	HTTPTimeout   time.Duration  `yaml:"http_timeout"`
	Log           logging.Config `yaml:"log"`
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		DownloadDir:   DefaultDownloadDir(),
		Quality:       DefaultQualityPreset,
		EncoderPreset: DefaultEncoderPreset,
		VideoCRF:      DefaultVideoCRF,
		AudioBitrate:  DefaultAudioBitrate,
		PlayerClients: append([]string(nil), DefaultPlayerClients...),
		HTTPRetries:   DefaultHTTPRetries,
		HTTPTimeout:   DefaultHTTPTimeout,
		Log:           logging.DefaultConfig(),
	}
}

// DefaultDownloadDir returns ~/Downloads/YouTubeClips, or a temp fallback
func DefaultDownloadDir() string {
	dir, err := platform.GetDefaultClipsDir()
	if err != nil {
		return FallbackDownloadDir
	}
	return dir
}

// Normalize fills unset fields with defaults and clamps out-of-range values
func (o *Options) Normalize() {
	if strings.TrimSpace(o.DownloadDir) == "" {
		o.DownloadDir = DefaultDownloadDir()
	}

	if !IsQualityPreset(o.Quality) {
		o.Quality = DefaultQualityPreset
	}

	if !lo.Contains(EncoderPresets, o.EncoderPreset) {
		o.EncoderPreset = DefaultEncoderPreset
	}

	// zero means unset; lossless encoding is not offered
	if o.VideoCRF <= MinVideoCRF || o.VideoCRF > MaxVideoCRF {
		o.VideoCRF = DefaultVideoCRF
	}

	if strings.TrimSpace(o.AudioBitrate) == "" {
		o.AudioBitrate = DefaultAudioBitrate
	}

	o.PlayerClients = NormalizePlayerClients(o.PlayerClients)

	if o.HTTPRetries < 0 {
		o.HTTPRetries = 0
	}
	if o.HTTPTimeout <= 0 {
		o.HTTPTimeout = DefaultHTTPTimeout
	}

	if o.Log.Level == "" {
		o.Log.Level = logging.LevelInfo
	}
	if o.Log.Format == "" {
		o.Log.Format = logging.FormatLogfmt
	}
}

// NormalizePlayerClients upper-cases names, drops blanks and duplicates and
// falls back to DefaultPlayerClients when nothing is left.
func NormalizePlayerClients(clients []string) []string {
	names := lo.Map(clients, func(name string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(name))
	})
	names = lo.Uniq(lo.Filter(names, func(name string, _ int) bool {
		return name != ""
	}))
	if len(names) == 0 {
		return append([]string(nil), DefaultPlayerClients...)
	}
	return names
}

// IsQualityPreset reports whether p is a known preset
func IsQualityPreset(p QualityPreset) bool {
	return lo.Contains(QualityPresetOptions(), p)
}

// QualityPresetOptions returns available quality preset options
func QualityPresetOptions() []QualityPreset {
	return []QualityPreset{QualityBest, QualityMedium, QualityLow}
}
