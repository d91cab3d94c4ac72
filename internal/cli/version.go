package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-clipper/internal/trim"
)

// VerifyTimeout bounds the ffmpeg -version probe
const VerifyTimeout = 5 * time.Second

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the ffmpeg in use",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	return RunVersionWithDependencies(cmd.Context(), trim.NewServiceFromOptions(opts, nil), cmd.OutOrStdout())
}

// InstallChecker reports which ffmpeg build would be used
type InstallChecker interface {
	VerifyInstalled(ctx context.Context) (string, error)
}

// RunVersionWithDependencies prints version information. A missing ffmpeg is
// reported but is not an error: it only matters once a clip is trimmed.
func RunVersionWithDependencies(ctx context.Context, checker InstallChecker, output io.Writer) error {
	fmt.Fprintf(output, "yt-clipper %s\n", Version)

	verifyCtx, cancel := context.WithTimeout(ctx, VerifyTimeout)
	defer cancel()

	line, err := checker.VerifyInstalled(verifyCtx)
	if err != nil {
		fmt.Fprintf(output, "ffmpeg: not available (%v)\n", err)
		return nil
	}

	fmt.Fprintf(output, "ffmpeg: %s\n", line)
	return nil
}
