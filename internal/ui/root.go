package ui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/samber/lo"

	"github.com/ytget/yt-clipper/internal/clip"
	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/logging"
	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
)

// Controller is the part of the request controller the window drives
type Controller interface {
	Execute(ctx context.Context, req model.ClipRequest) (string, error)
	SetUpdateCallback(func(*model.ClipTask))
}

// ControllerFactory builds a controller for the current settings
type ControllerFactory func(opts config.Options) Controller

// FileActions opens finished clips
type FileActions struct {
	Open   func(path string) error
	Reveal func(path string) error
}

// DefaultFileActions uses the platform file manager and default player
func DefaultFileActions() FileActions {
	return FileActions{
		Open:   platform.OpenFileWithDefaultApp,
		Reveal: platform.OpenFileInManager,
	}
}

// RootUI represents the main UI structure
type RootUI struct {
	window        fyne.Window
	app           fyne.App
	settings      *config.Settings
	localization  *Localization
	logger        log.Logger
	files         FileActions
	newController ControllerFactory

	controller      Controller
	controllerStale bool

	// Form
	urlEntry    *widget.Entry
	urlHint     *widget.Label
	startLabel  *widget.Label
	startEntry  *widget.Entry
	endLabel    *widget.Label
	endEntry    *widget.Entry
	downloadBtn *widget.Button
	cancelBtn   *widget.Button
	settingsBtn *widget.Button

	// Progress and results
	progressBar *widget.ProgressBar
	stageLabel  *widget.Label
	resultLabel *widget.Label
	openBtn     *widget.Button
	revealBtn   *widget.Button
	anotherBtn  *widget.Button
	resultBox   *fyne.Container
	logTitle    *widget.Label
	statusLog   *widget.Label
	logScroll   *container.Scroll
	logLines    []string

	mu         sync.Mutex
	running    bool
	cancel     context.CancelFunc
	lastStatus model.TaskStatus
	outputPath string
	clipTitle  string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, newController ControllerFactory, logger log.Logger) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:          window,
		app:             app,
		settings:        settings,
		localization:    localization,
		logger:          log.With(logging.OrNop(logger), "component", "ui"),
		files:           DefaultFileActions(),
		newController:   newController,
		controllerStale: true,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// SetFileActions replaces how finished clips are opened
func (ui *RootUI) SetFileActions(files FileActions) {
	ui.files = files
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// URL row with a hint under it
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnChanged = func(string) { ui.updateURLHint() }
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) { ui.onDownloadClick() }
	ui.urlHint = widget.NewLabel("")
	ui.urlHint.Importance = widget.LowImportance

	// Time range
	ui.startLabel = widget.NewLabel("")
	ui.startEntry = widget.NewEntry()
	ui.startEntry.SetText(DefaultStartTime)
	ui.startEntry.Validator = validateTimestamp
	ui.endLabel = widget.NewLabel("")
	ui.endEntry = widget.NewEntry()
	ui.endEntry.SetText(DefaultEndTime)
	ui.endEntry.Validator = validateTimestamp
	timeRow := container.NewGridWithColumns(2,
		container.NewVBox(ui.startLabel, ui.startEntry),
		container.NewVBox(ui.endLabel, ui.endEntry),
	)

	// Actions
	ui.downloadBtn = widget.NewButton("", ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton("", ui.onCancelClick)
	ui.cancelBtn.Disable()
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance
	actions := container.NewHBox(ui.downloadBtn, ui.cancelBtn, layout.NewSpacer(), ui.settingsBtn)

	// Progress
	ui.progressBar = widget.NewProgressBar()
	ui.stageLabel = widget.NewLabel("")
	ui.stageLabel.Truncation = fyne.TextTruncateEllipsis

	// Result panel, shown after success
	ui.resultLabel = widget.NewLabel("")
	ui.resultLabel.Wrapping = fyne.TextWrapBreak
	ui.openBtn = widget.NewButton("", ui.onOpenClip)
	ui.revealBtn = widget.NewButton("", ui.onRevealClip)
	ui.anotherBtn = widget.NewButton("", ui.onClipAnother)
	ui.resultBox = container.NewVBox(ui.resultLabel, container.NewHBox(ui.openBtn, ui.revealBtn, ui.anotherBtn))
	ui.resultBox.Hide()

	// Status log
	ui.logTitle = widget.NewLabel("")
	ui.logTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.statusLog = widget.NewLabel("")
	ui.statusLog.Wrapping = fyne.TextWrapWord
	ui.logScroll = container.NewVScroll(ui.statusLog)
	ui.logScroll.SetMinSize(fyne.NewSize(0, float32(StatusLogMinRows)*ui.statusLog.MinSize().Height))

	form := container.NewVBox(
		ui.urlEntry,
		ui.urlHint,
		timeRow,
		actions,
		ui.progressBar,
		ui.stageLabel,
		ui.resultBox,
		widget.NewSeparator(),
	)

	content := container.NewBorder(form, nil, nil, nil, container.NewBorder(ui.logTitle, nil, nil, nil, ui.logScroll))
	ui.window.SetContent(content)

	ui.refreshUITexts()
	ui.updateURLHint()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := lo.Keys(availableLanguages)
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.startLabel.SetText(ui.localization.GetText(KeyStartTime))
	ui.endLabel.SetText(ui.localization.GetText(KeyEndTime))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancel))
	ui.openBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyOpen))
	ui.revealBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyShowInFolder))
	ui.anotherBtn.SetText(IconScissors + " " + ui.localization.GetText(KeyClipAnother))
	ui.logTitle.SetText(ui.localization.GetText(KeyStatusLog))

	ui.mu.Lock()
	status := ui.lastStatus
	ui.mu.Unlock()
	ui.stageLabel.SetText(ui.localization.StatusText(status))
	ui.updateURLHint()
}

// updateURLHint tells the user whether the URL looks like a YouTube link
func (ui *RootUI) updateURLHint() {
	text := platform.CleanURL(ui.urlEntry.Text)
	switch {
	case text == "":
		ui.urlHint.SetText(ui.localization.GetText(KeyYouTubeHint))
		ui.urlHint.Importance = widget.LowImportance
	case platform.IsYouTubeURL(text):
		ui.urlHint.SetText(IconCheck + " " + text)
		ui.urlHint.Importance = widget.SuccessImportance
	default:
		ui.urlHint.SetText(ui.localization.GetText(KeyNotYouTube))
		ui.urlHint.Importance = widget.WarningImportance
	}
	ui.urlHint.Refresh()
}

// validateTimestamp marks malformed time entries; the controller still
// validates the submitted request.
func validateTimestamp(input string) error {
	_, err := model.ParseTimestamp(input)
	return err
}

// buildRequest reads the form once at submission time
func (ui *RootUI) buildRequest() model.ClipRequest {
	return model.ClipRequest{
		URL:   platform.CleanURL(ui.urlEntry.Text),
		Start: strings.TrimSpace(ui.startEntry.Text),
		End:   strings.TrimSpace(ui.endEntry.Text),
	}
}

// currentController rebuilds the controller when settings changed
func (ui *RootUI) currentController() Controller {
	if ui.controller == nil || ui.controllerStale {
		ui.controller = ui.newController(ui.settings.Options())
		ui.controller.SetUpdateCallback(ui.onTaskUpdate)
		ui.controllerStale = false
	}
	return ui.controller
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	ui.mu.Lock()
	if ui.running {
		ui.mu.Unlock()
		ui.appendLog(ui.localization.GetText(KeyErrBusy))
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	ui.running = true
	ui.cancel = cancel
	ui.lastStatus = model.TaskStatusPending
	ui.outputPath = ""
	ui.clipTitle = ""
	ui.mu.Unlock()

	req := ui.buildRequest()
	level.Info(ui.logger).Log("msg", "request submitted", "url", req.URL, "start", req.Start, "end", req.End)

	ui.setBusy(true)
	ui.appendLog(fmt.Sprintf("%s %s [%s - %s]", IconScissors, req.URL, req.Start, req.End))

	go ui.execute(ctx, cancel, ui.currentController(), req)
}

// execute runs the blocking pipeline off the UI thread
func (ui *RootUI) execute(ctx context.Context, cancel context.CancelFunc, ctrl Controller, req model.ClipRequest) {
	defer cancel()

	outputPath, err := ctrl.Execute(ctx, req)
	fyne.Do(func() {
		ui.finish(outputPath, err)
	})
}

// onCancelClick stops the running request
func (ui *RootUI) onCancelClick() {
	ui.mu.Lock()
	cancel := ui.cancel
	ui.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	ui.cancelBtn.Disable()
	ui.appendLog(ui.localization.GetText(KeyCancelling))
}

// onTaskUpdate handles task updates from the controller goroutine
func (ui *RootUI) onTaskUpdate(task *model.ClipTask) {
	fyne.Do(func() {
		ui.applyUpdate(task)
	})
}

// applyUpdate renders a task snapshot; must run on the UI thread
func (ui *RootUI) applyUpdate(task *model.ClipTask) {
	ui.mu.Lock()
	ui.clipTitle = task.GetDisplayTitle()
	if task.Status.IsFinished() {
		// finish renders the outcome
		ui.mu.Unlock()
		return
	}
	changed := task.Status != ui.lastStatus
	ui.lastStatus = task.Status
	ui.mu.Unlock()

	status := ui.localization.StatusText(task.Status)
	if changed && task.Status.IsActive() {
		ui.appendLog(status)
	}

	ui.progressBar.SetValue(task.Progress)
	if task.Status.IsActive() && task.Message != "" {
		status += MiddleDotSeparator + task.Message
	}
	ui.stageLabel.SetText(status)
}

// finish returns the form to idle and shows the outcome; must run on the UI thread
func (ui *RootUI) finish(outputPath string, err error) {
	ui.mu.Lock()
	ui.running = false
	ui.cancel = nil
	ui.mu.Unlock()

	ui.setBusy(false)

	if err != nil {
		ui.showFailure(err)
		return
	}

	ui.mu.Lock()
	ui.outputPath = outputPath
	ui.lastStatus = model.TaskStatusCompleted
	title := ui.clipTitle
	ui.mu.Unlock()
	if title == "" {
		title = outputPath
	}

	level.Info(ui.logger).Log("msg", "clip ready", "output", outputPath)
	if err := platform.NotifyMediaScanner(outputPath); err != nil {
		level.Debug(ui.logger).Log("msg", "media scan failed", "err", err)
	}
	ui.progressBar.SetValue(1)
	ui.stageLabel.SetText(ui.localization.StatusText(model.TaskStatusCompleted))
	ui.resultLabel.SetText(ui.localization.GetText(KeyClipSaved) + ": " + outputPath)
	ui.resultBox.Show()
	ui.appendLog(IconCheck + " " + ui.localization.GetText(KeyClipSaved) + ": " + outputPath)

	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyClipCompleted),
		Content: title,
	})

	if ui.settings.GetAutoRevealOnComplete() {
		ui.onRevealClip()
	}
}

// showFailure reports err and leaves the inputs as entered so the user can fix them
func (ui *RootUI) showFailure(err error) {
	kind := clip.KindOf(err)
	level.Warn(ui.logger).Log("msg", "request failed", "kind", kind, "err", err)

	ui.mu.Lock()
	if kind == clip.Cancelled {
		ui.lastStatus = model.TaskStatusCancelled
	} else {
		ui.lastStatus = model.TaskStatusPending
	}
	ui.mu.Unlock()

	ui.progressBar.SetValue(0)

	heading := ui.localization.ErrorText(kind)
	if kind == clip.Cancelled {
		ui.stageLabel.SetText(heading)
		ui.appendLog(heading)
		return
	}

	detail := err.Error()
	var ce *clip.Error
	if errors.As(err, &ce) && ce.Err != nil {
		detail = ce.Err.Error()
	}

	ui.stageLabel.SetText(IconError + " " + heading)
	ui.appendLog(IconError + " " + heading + ": " + detail)
}

// setBusy toggles the form between idle and running
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.downloadBtn.Disable()
		ui.urlEntry.Disable()
		ui.startEntry.Disable()
		ui.endEntry.Disable()
		ui.cancelBtn.Enable()
		ui.resultBox.Hide()
		ui.progressBar.SetValue(0)
		return
	}

	ui.downloadBtn.Enable()
	ui.urlEntry.Enable()
	ui.startEntry.Enable()
	ui.endEntry.Enable()
	ui.cancelBtn.Disable()
}

// appendLog adds a timestamped line to the status log
func (ui *RootUI) appendLog(line string) {
	ui.logLines = append(ui.logLines, fmt.Sprintf(LogLineFormat, time.Now().Format(LogTimeFormat), line))
	if len(ui.logLines) > MaxStatusLines {
		ui.logLines = ui.logLines[len(ui.logLines)-MaxStatusLines:]
	}
	ui.statusLog.SetText(strings.Join(ui.logLines, "\n"))
	ui.logScroll.ScrollToBottom()
}

// onClipAnother resets the form for a new request
func (ui *RootUI) onClipAnother() {
	ui.mu.Lock()
	ui.outputPath = ""
	ui.lastStatus = model.TaskStatusPending
	ui.mu.Unlock()

	ui.urlEntry.SetText("")
	ui.startEntry.SetText(DefaultStartTime)
	ui.endEntry.SetText(DefaultEndTime)
	ui.progressBar.SetValue(0)
	ui.stageLabel.SetText(ui.localization.StatusText(model.TaskStatusPending))
	ui.resultBox.Hide()
	ui.window.Canvas().Focus(ui.urlEntry)
}

// onOpenClip plays the finished clip
func (ui *RootUI) onOpenClip() {
	ui.withOutput(ui.files.Open)
}

// onRevealClip shows the finished clip in the file manager
func (ui *RootUI) onRevealClip() {
	ui.withOutput(ui.files.Reveal)
}

func (ui *RootUI) withOutput(action func(string) error) {
	ui.mu.Lock()
	path := ui.outputPath
	ui.mu.Unlock()

	if path == "" || action == nil {
		return
	}
	if err := action(path); err != nil {
		level.Warn(ui.logger).Log("msg", "failed to open clip", "path", path, "err", err)
		ui.appendLog(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the next request
func (ui *RootUI) onSettingsSaved() {
	ui.controllerStale = true
	ui.onLanguageChange(ui.settings.GetLanguage())
}
