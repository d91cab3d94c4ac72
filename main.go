package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/ytget/yt-clipper/internal/clip"
	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/logging"
	"github.com/ytget/yt-clipper/internal/platform"
	"github.com/ytget/yt-clipper/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.yt-clipper"

	// LogLevelEnv overrides the desktop log level
	LogLevelEnv = "YT_CLIPPER_LOG_LEVEL"
)

func main() {
	logCfg := logging.DefaultConfig()
	if lvl := os.Getenv(LogLevelEnv); lvl != "" {
		logCfg.Level = lvl
	}
	logger := logging.New(logCfg, os.Stderr)
	level.Info(logger).Log("msg", "starting yt-clipper", "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewClipperTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		level.Warn(logger).Log("msg", "failed to ensure clips dir", "err", err)
	}

	// Rebuilt by the window whenever settings are saved
	newController := func(o config.Options) ui.Controller {
		return clip.NewControllerFromOptions(o, log.With(logger, "version", version))
	}

	ui.NewRootUI(myWindow, myApp, newController, logger)

	myWindow.ShowAndRun()
}
