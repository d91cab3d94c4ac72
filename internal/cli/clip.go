package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-clipper/internal/clip"
	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/logging"
	"github.com/ytget/yt-clipper/internal/model"
)

// Prompt defaults, the same range the desktop form starts with
const (
	DefaultStartTime = "00:00:00"
	DefaultEndTime   = "00:01:00"
)

var (
	clipURL       string
	clipStartTime string
	clipEndTime   string
	clipOutputDir string
	clipQuality   string
	clipKeepFull  bool
)

var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Download a video and trim it to a time range",
	Long: `Download a YouTube video and re-encode the range between --start and --end
into <title>_clip_HH-MM-SS_to_HH-MM-SS.mp4 in the output directory.

Values not given as flags are asked for when stdin is a terminal.

Example:
  yt-clipper clip --url "https://www.youtube.com/watch?v=dQw4w9WgXcQ" --start 00:00:43 --end 00:01:05`,
	RunE: runClip,
}

func init() {
	rootCmd.AddCommand(clipCmd)
	clipCmd.Flags().StringVar(&clipURL, "url", "", "YouTube video URL")
	clipCmd.Flags().StringVar(&clipStartTime, "start", "", "Start timestamp in HH:MM:SS format")
	clipCmd.Flags().StringVar(&clipEndTime, "end", "", "End timestamp in HH:MM:SS format")
	clipCmd.Flags().StringVar(&clipOutputDir, "output-dir", "", "Directory for the clip (default from config)")
	clipCmd.Flags().StringVar(&clipQuality, "quality", "", "Download quality: best, medium or low")
	clipCmd.Flags().BoolVar(&clipKeepFull, "keep-full", false, "Keep the full download after trimming")
}

func runClip(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		opts.DownloadDir = clipOutputDir
	}
	if flags.Changed("quality") {
		opts.Quality = config.QualityPreset(clipQuality)
	}
	if flags.Changed("keep-full") {
		opts.KeepFullVideo = clipKeepFull
	}
	opts.Normalize()

	req := model.ClipRequest{URL: clipURL, Start: clipStartTime, End: clipEndTime}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if err := surveyPrompt(&req); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(opts.Log, os.Stderr)
	controller := clip.NewControllerFromOptions(opts, logger)

	return RunClipWithDependencies(ctx, controller, req, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// ClipRunner is the controller surface the command drives
type ClipRunner interface {
	Execute(ctx context.Context, req model.ClipRequest) (string, error)
	SetUpdateCallback(func(*model.ClipTask))
}

// RunClipWithDependencies runs one request with injected dependencies (for
// testing). Messages go to output, progress bars to progressOutput.
func RunClipWithDependencies(
	ctx context.Context,
	runner ClipRunner,
	req model.ClipRequest,
	output io.Writer,
	progressOutput io.Writer,
) error {
	bars := newStageBars(ctx, progressOutput)
	runner.SetUpdateCallback(bars.update)

	fmt.Fprintf(output, "Clipping %s from %s to %s...\n", req.URL, req.Start, req.End)

	outputPath, err := runner.Execute(ctx, req)
	bars.finish(err == nil)
	if clip.IsKind(err, clip.Cancelled) {
		fmt.Fprintln(output, "Cancelled.")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Clip saved to: %s\n", outputPath)
	return nil
}

// surveyPrompt asks for the request fields the flags left empty
func surveyPrompt(req *model.ClipRequest) error {
	qs := missingQuestions(*req)
	if len(qs) == 0 {
		return nil
	}

	answers := struct {
		URL   string `survey:"url"`
		Start string `survey:"start"`
		End   string `survey:"end"`
	}{}
	if err := survey.Ask(qs, &answers); err != nil {
		return errors.Wrap(err, "prompt failed")
	}

	applyAnswers(req, answers.URL, answers.Start, answers.End)
	return nil
}

func missingQuestions(req model.ClipRequest) []*survey.Question {
	var qs []*survey.Question
	if req.URL == "" {
		qs = append(qs, &survey.Question{
			Name:     "url",
			Prompt:   &survey.Input{Message: "YouTube URL:"},
			Validate: survey.Required,
		})
	}
	if req.Start == "" {
		qs = append(qs, &survey.Question{
			Name:     "start",
			Prompt:   &survey.Input{Message: "Start (HH:MM:SS):", Default: DefaultStartTime},
			Validate: validateTimestampAnswer,
		})
	}
	if req.End == "" {
		qs = append(qs, &survey.Question{
			Name:     "end",
			Prompt:   &survey.Input{Message: "End (HH:MM:SS):", Default: DefaultEndTime},
			Validate: validateTimestampAnswer,
		})
	}
	return qs
}

func applyAnswers(req *model.ClipRequest, url, start, end string) {
	if url != "" {
		req.URL = url
	}
	if start != "" {
		req.Start = start
	}
	if end != "" {
		req.End = end
	}
}

func validateTimestampAnswer(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return errors.New("expected a timestamp")
	}
	_, err := model.ParseTimestamp(s)
	return err
}
