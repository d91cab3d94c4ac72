package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-clipper/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings, *int) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := app.NewWindow("settings")

	settings := config.NewSettings(app)
	saved := 0
	sd := NewSettingsDialog(settings, window, NewLocalization(), func() { saved++ })
	return sd, settings, &saved
}

func TestSettingsDialog_LoadsCurrentSettings(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)
	settings.SetDownloadDirectory("/clips")
	settings.SetQualityPreset(config.QualityMedium)
	settings.SetEncoderPreset("fast")
	settings.SetKeepFullVideo(true)
	settings.SetLanguage("ru")

	sd.loadCurrentSettings()

	assert.Equal(t, "/clips", sd.downloadDirEntry.Text)
	assert.Equal(t, string(config.QualityMedium), sd.qualitySelect.Selected)
	assert.Equal(t, "fast", sd.encoderSelect.Selected)
	assert.True(t, sd.keepFullCheck.Checked)
	assert.Equal(t, "Русский", sd.languageSelect.Selected)
	assert.True(t, sd.autoRevealCheck.Checked)
}

func TestSettingsDialog_Save(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)
	sd.loadCurrentSettings()

	sd.downloadDirEntry.SetText("/tmp/clips")
	sd.qualitySelect.SetSelected(string(config.QualityLow))
	sd.encoderSelect.SetSelected("ultrafast")
	sd.keepFullCheck.SetChecked(true)
	sd.ffmpegEntry.SetText("/opt/ffmpeg/bin/ffmpeg")
	sd.autoRevealCheck.SetChecked(false)
	sd.languageSelect.SetSelected("Português")

	sd.onSave(true)

	assert.Equal(t, 1, *saved)
	assert.Equal(t, "/tmp/clips", settings.GetDownloadDirectory())
	assert.Equal(t, config.QualityLow, settings.GetQualityPreset())
	assert.Equal(t, "ultrafast", settings.GetEncoderPreset())
	assert.True(t, settings.GetKeepFullVideo())
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", settings.GetFFmpegPath())
	assert.False(t, settings.GetAutoRevealOnComplete())
	assert.Equal(t, "pt", settings.GetLanguage())
}

func TestSettingsDialog_CancelKeepsSettings(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)
	sd.loadCurrentSettings()
	before := settings.GetDownloadDirectory()

	sd.downloadDirEntry.SetText("/elsewhere")
	sd.onSave(false)

	assert.Zero(t, *saved)
	assert.Equal(t, before, settings.GetDownloadDirectory())
}

func TestSettingsDialog_LanguageOptions(t *testing.T) {
	sd, _, _ := newTestSettingsDialog(t)

	assert.Equal(t, "system", sd.languageCodes["System default"])
	assert.Equal(t, "en", sd.languageCodes["English"])
	assert.Len(t, sd.languageSelect.Options, 4)
}
