package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"github.com/ytget/yt-clipper/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	onSaved      func()
	dialog       *dialog.ConfirmDialog

	// UI components
	downloadDirEntry *widget.Entry
	qualitySelect    *widget.Select
	encoderSelect    *widget.Select
	keepFullCheck    *widget.Check
	ffmpegEntry      *widget.Entry
	languageSelect   *widget.Select
	autoRevealCheck  *widget.Check

	// language display name -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were stored.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Quality preset selection
	qualityOptions := lo.Map(config.QualityPresetOptions(), func(p config.QualityPreset, _ int) string {
		return string(p)
	})
	sd.qualitySelect = widget.NewSelect(qualityOptions, nil)

	sd.keepFullCheck = widget.NewCheck(text(KeyKeepFullVideo), nil)

	// Encoding
	sd.encoderSelect = widget.NewSelect(config.EncoderPresets, nil)
	sd.ffmpegEntry = widget.NewEntry()
	sd.ffmpegEntry.SetPlaceHolder("ffmpeg")

	// Language selection shows display names
	sd.languageCodes = make(map[string]string)
	for code, name := range sd.settings.GetLanguageOptions() {
		if code == "system" {
			name = text(KeySystemDefaultLabel)
		}
		sd.languageCodes[name] = code
	}
	languageNames := lo.Keys(sd.languageCodes)
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	sd.autoRevealCheck = widget.NewCheck(text(KeyAutoReveal), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabelWithStyle(text(KeyDownloadSettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewLabel(text(KeyQualityPreset)+":"),
		sd.qualitySelect,
		sd.keepFullCheck,

		widget.NewLabelWithStyle(text(KeyEncodingSettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyEncoderPreset)+":"),
		sd.encoderSelect,

		widget.NewLabel(text(KeyFFmpegPath)+":"),
		sd.ffmpegEntry,

		widget.NewLabelWithStyle(text(KeyInterfaceSettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
		sd.autoRevealCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.qualitySelect.SetSelected(string(sd.settings.GetQualityPreset()))
	sd.keepFullCheck.SetChecked(sd.settings.GetKeepFullVideo())
	sd.encoderSelect.SetSelected(sd.settings.GetEncoderPreset())
	sd.ffmpegEntry.SetText(sd.settings.GetFFmpegPath())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
			break
		}
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if downloadDir := sd.downloadDirEntry.Text; downloadDir != "" {
		sd.settings.SetDownloadDirectory(downloadDir)
	}

	if sd.qualitySelect.Selected != "" {
		sd.settings.SetQualityPreset(config.QualityPreset(sd.qualitySelect.Selected))
	}

	if sd.encoderSelect.Selected != "" {
		sd.settings.SetEncoderPreset(sd.encoderSelect.Selected)
	}

	sd.settings.SetKeepFullVideo(sd.keepFullCheck.Checked)
	sd.settings.SetFFmpegPath(sd.ffmpegEntry.Text)
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
