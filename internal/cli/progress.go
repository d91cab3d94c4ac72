package cli

import (
	"context"
	"io"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/ytget/yt-clipper/internal/model"
)

const (
	barWidth = 64
	barTotal = 1000
)

// stageBars renders one bar per controller stage from task snapshots
type stageBars struct {
	mu       sync.Mutex
	progress *mpb.Progress
	current  *mpb.Bar
	status   model.TaskStatus
	done     bool
}

func newStageBars(ctx context.Context, w io.Writer) *stageBars {
	return &stageBars{
		progress: mpb.NewWithContext(ctx, mpb.WithOutput(w), mpb.WithWidth(barWidth)),
	}
}

// update is the controller's update callback
func (s *stageBars) update(task *model.ClipTask) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return
	}

	if task.Status != s.status {
		s.completeCurrent()
		s.status = task.Status
		if name := stageName(task.Status); name != "" {
			s.current = s.newBar(name)
		}
	}

	if s.current != nil && task.Progress >= 0 {
		s.current.SetCurrent(int64(task.Progress * barTotal))
	}
}

// finish completes or aborts the open bar and waits for rendering to stop
func (s *stageBars) finish(ok bool) {
	s.mu.Lock()
	if s.current != nil {
		if ok {
			s.current.SetTotal(-1, true)
		} else {
			s.current.Abort(false)
		}
		s.current = nil
	}
	s.done = true
	s.mu.Unlock()

	s.progress.Wait()
}

func (s *stageBars) completeCurrent() {
	if s.current == nil {
		return
	}
	s.current.SetTotal(-1, true)
	s.current = nil
}

func (s *stageBars) newBar(name string) *mpb.Bar {
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")

	return s.progress.New(barTotal,
		barStyle,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
}

func stageName(status model.TaskStatus) string {
	switch status {
	case model.TaskStatusDownloading:
		return "Downloading"
	case model.TaskStatusTrimming:
		return "Trimming"
	default:
		return ""
	}
}
