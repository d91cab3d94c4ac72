package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-clipper/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current options to the config file",
	Long: `Write the resolved options (defaults merged with an existing file and
--log-level) to the config file so they can be edited.

Example:
  yt-clipper config init --config ~/.config/yt-clipper.yaml`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	path := cfgFile
	if path == "" {
		path = config.DefaultConfigFile
	}
	return RunConfigInitWithDependencies(opts, path, configForce, cmd.OutOrStdout())
}

// RunConfigInitWithDependencies writes opts to path. An existing file is kept
// unless force is set.
func RunConfigInitWithDependencies(opts config.Options, path string, force bool, output io.Writer) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Errorf("config file %s already exists; use --force to overwrite", path)
	}

	if err := config.SaveFile(opts, path); err != nil {
		return err
	}

	fmt.Fprintf(output, "Config written to %s\n", path)
	return nil
}
