package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyQualityPreset      = "quality_preset"
	KeyEncoderPreset      = "encoder_preset"
	KeyKeepFullVideo      = "keep_full_video"
	KeyFFmpegPath         = "ffmpeg_path"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Defaults for GUI-only preferences
const (
	DefaultKeepFullVideo      = false
	DefaultAutoRevealComplete = true
)

// Settings manages application configuration stored in Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		dir = DefaultDownloadDir()
		s.SetDownloadDirectory(dir)
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetQualityPreset returns the configured quality preset
func (s *Settings) GetQualityPreset() QualityPreset {
	preset := QualityPreset(s.app.Preferences().String(KeyQualityPreset))
	if !IsQualityPreset(preset) {
		s.SetQualityPreset(DefaultQualityPreset)
		return DefaultQualityPreset
	}
	return preset
}

// SetQualityPreset sets the quality preset
func (s *Settings) SetQualityPreset(preset QualityPreset) {
	s.app.Preferences().SetString(KeyQualityPreset, string(preset))
}

// GetEncoderPreset returns the x264 preset used when trimming
func (s *Settings) GetEncoderPreset() string {
	preset := s.app.Preferences().String(KeyEncoderPreset)
	if preset == "" {
		s.SetEncoderPreset(DefaultEncoderPreset)
		return DefaultEncoderPreset
	}
	return preset
}

// SetEncoderPreset sets the x264 preset; unknown values fall back to the default
func (s *Settings) SetEncoderPreset(preset string) {
	opts := Options{EncoderPreset: preset}
	opts.Normalize()
	s.app.Preferences().SetString(KeyEncoderPreset, opts.EncoderPreset)
}

// GetKeepFullVideo returns whether the untrimmed download is kept
func (s *Settings) GetKeepFullVideo() bool {
	return s.app.Preferences().BoolWithFallback(KeyKeepFullVideo, DefaultKeepFullVideo)
}

// SetKeepFullVideo sets whether the untrimmed download is kept
func (s *Settings) SetKeepFullVideo(keep bool) {
	s.app.Preferences().SetBool(KeyKeepFullVideo, keep)
}

// GetFFmpegPath returns the configured ffmpeg executable, empty for PATH lookup
func (s *Settings) GetFFmpegPath() string {
	return s.app.Preferences().String(KeyFFmpegPath)
}

// SetFFmpegPath sets the ffmpeg executable path
func (s *Settings) SetFFmpegPath(path string) {
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal finished clips
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal finished clips
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Options resolves the stored preferences into service options
func (s *Settings) Options() Options {
	opts := DefaultOptions()
	opts.DownloadDir = s.GetDownloadDirectory()
	opts.Quality = s.GetQualityPreset()
	opts.EncoderPreset = s.GetEncoderPreset()
	opts.KeepFullVideo = s.GetKeepFullVideo()
	opts.FFmpegPath = s.GetFFmpegPath()
	opts.Normalize()
	return opts
}
