package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-clipper/internal/logging"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.NotEmpty(t, opts.DownloadDir)
	assert.Equal(t, DefaultQualityPreset, opts.Quality)
	assert.Equal(t, DefaultEncoderPreset, opts.EncoderPreset)
	assert.Equal(t, DefaultVideoCRF, opts.VideoCRF)
	assert.Equal(t, DefaultAudioBitrate, opts.AudioBitrate)
	assert.Equal(t, DefaultPlayerClients, opts.PlayerClients)
	assert.Equal(t, DefaultHTTPRetries, opts.HTTPRetries)
	assert.False(t, opts.KeepFullVideo)
}

func TestDefaultOptions_DoesNotShareClientSlice(t *testing.T) {
	opts := DefaultOptions()
	opts.PlayerClients[0] = "TV"

	assert.Equal(t, "ANDROID", DefaultPlayerClients[0])
}

func TestOptionsNormalize(t *testing.T) {
	opts := Options{
		Quality:       "ultra",
		EncoderPreset: "placebo-plus",
		VideoCRF:      99,
		PlayerClients: []string{" web ", "", "WEB", "ios"},
		HTTPRetries:   -3,
	}

	opts.Normalize()

	assert.NotEmpty(t, opts.DownloadDir)
	assert.Equal(t, DefaultQualityPreset, opts.Quality)
	assert.Equal(t, DefaultEncoderPreset, opts.EncoderPreset)
	assert.Equal(t, DefaultVideoCRF, opts.VideoCRF)
	assert.Equal(t, DefaultAudioBitrate, opts.AudioBitrate)
	assert.Equal(t, []string{"WEB", "IOS"}, opts.PlayerClients)
	assert.Equal(t, 0, opts.HTTPRetries)
	assert.Equal(t, DefaultHTTPTimeout, opts.HTTPTimeout)
	assert.Equal(t, logging.LevelInfo, opts.Log.Level)
	assert.Equal(t, logging.FormatLogfmt, opts.Log.Format)
}

func TestNormalizePlayerClients_Empty(t *testing.T) {
	assert.Equal(t, DefaultPlayerClients, NormalizePlayerClients(nil))
	assert.Equal(t, DefaultPlayerClients, NormalizePlayerClients([]string{" ", ""}))
}

func TestQualityPresetOptions(t *testing.T) {
	options := QualityPresetOptions()
	expected := []QualityPreset{QualityBest, QualityMedium, QualityLow}

	assert.Equal(t, expected, options)
	assert.True(t, IsQualityPreset(QualityMedium))
	assert.False(t, IsQualityPreset("audio"))
}
