package trim

import (
	"path/filepath"
	"strings"

	"github.com/ytget/yt-clipper/internal/model"
)

// Output naming
const (
	FullSuffix         = "_full"
	ClipInfix          = "_clip_"
	RangeSeparator     = "_to_"
	OutputExtensionMP4 = ".mp4"
)

// ClipOutputPath returns <dir>/<base>_clip_HH-MM-SS_to_HH-MM-SS.mp4 where base
// is the input file name without extension and without the _full suffix.
// An empty dir places the clip next to the input.
func ClipOutputPath(dir, inputPath string, rng model.TimeRange) string {
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}

	name := filepath.Base(inputPath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.TrimSuffix(name, FullSuffix)

	return filepath.Join(dir, name+ClipInfix+rng.Start.FilenameString()+RangeSeparator+rng.End.FilenameString()+OutputExtensionMP4)
}
