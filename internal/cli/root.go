package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-clipper/internal/config"
)

// Version is set during build via -ldflags "-X github.com/ytget/yt-clipper/internal/cli.Version=X.Y.Z"
var Version = "dev"

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "yt-clipper",
	Short: "Cut a clip out of a YouTube video",
	Long: `yt-clipper downloads a YouTube video and trims it to a time range with ffmpeg.

The full download is written next to the clip and removed after trimming
unless --keep-full is given.

Example:
  yt-clipper clip --url https://youtu.be/dQw4w9WgXcQ --start 00:00:43 --end 00:01:05`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command line and exits with status 1 on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

// loadOptions reads the config file and applies the global flags
func loadOptions() (config.Options, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigFile
	}

	opts, err := config.LoadFile(path)
	if err != nil {
		return opts, err
	}

	if logLevel != "" {
		opts.Log.Level = logLevel
	}
	return opts, nil
}
