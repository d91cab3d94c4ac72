package clip

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/atomic"

	"github.com/ytget/yt-clipper/internal/logging"
	"github.com/ytget/yt-clipper/internal/model"
)

// Controller runs one clip request at a time: validate, download, trim, report.
type Controller struct {
	downloader Downloader
	trimmer    Trimmer
	logger     log.Logger

	inFlight atomic.Bool

	callbackMu sync.RWMutex
	onUpdate   func(*model.ClipTask) // callback for UI updates
}

// NewController creates a controller around the two collaborators
func NewController(downloader Downloader, trimmer Trimmer, logger log.Logger) *Controller {
	return &Controller{
		downloader: downloader,
		trimmer:    trimmer,
		logger:     log.With(logging.OrNop(logger), "component", "clip"),
	}
}

// SetUpdateCallback sets the callback function for task updates. The callback
// receives a copy and runs on the goroutine that called Execute.
func (c *Controller) SetUpdateCallback(callback func(*model.ClipTask)) {
	c.callbackMu.Lock()
	defer c.callbackMu.Unlock()
	c.onUpdate = callback
}

// Running reports whether a request is in flight
func (c *Controller) Running() bool {
	return c.inFlight.Load()
}

// Execute validates req, downloads the video, trims it and returns the clip
// path. Errors are *Error values; see KindOf.
func (c *Controller) Execute(ctx context.Context, req model.ClipRequest) (string, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		level.Warn(c.logger).Log("msg", "request rejected", "url", req.URL, "err", ErrBusy)
		return "", newError(Busy, "execute", ErrBusy)
	}
	defer c.inFlight.Store(false)

	run := &run{ctrl: c, task: model.NewClipTask(req)}
	logger := log.With(c.logger, "task", run.task.ID)

	run.stage(model.TaskStatusValidating, "Validating request")
	rng, err := ValidateRequest(req)
	if err != nil {
		level.Info(logger).Log("msg", "request rejected", "err", err)
		return "", run.fail(newError(InvalidInput, "validate", err))
	}

	if ctx.Err() != nil {
		return "", run.fail(newError(Cancelled, "validate", ctx.Err()))
	}

	url := strings.TrimSpace(req.URL)
	level.Info(logger).Log("msg", "download started", "url", url, "range", rng)
	run.stage(model.TaskStatusDownloading, "Downloading video")

	sourcePath, err := c.downloader.Download(ctx, url, run.progress)
	if err != nil {
		if ctx.Err() != nil {
			level.Info(logger).Log("msg", "download cancelled")
			return "", run.fail(newError(Cancelled, "download", ctx.Err()))
		}
		level.Error(logger).Log("msg", "download failed", "err", err)
		return "", run.fail(newError(DownloadFailed, "download", err))
	}
	run.update(func(t *model.ClipTask) {
		t.SourcePath = sourcePath
		t.Title = titleFromPath(sourcePath)
	})

	level.Info(logger).Log("msg", "trim started", "source", sourcePath)
	run.stage(model.TaskStatusTrimming, "Trimming "+rng.String())

	outputPath, err := c.trimmer.Trim(ctx, sourcePath, rng, run.progress)
	if err != nil {
		if ctx.Err() != nil {
			level.Info(logger).Log("msg", "trim cancelled")
			return "", run.fail(newError(Cancelled, "trim", ctx.Err()))
		}
		level.Error(logger).Log("msg", "trim failed", "err", err)
		return "", run.fail(newError(TrimFailed, "trim", err))
	}

	run.update(func(t *model.ClipTask) {
		t.Status = model.TaskStatusCompleted
		t.OutputPath = outputPath
		t.Message = "Clip saved"
		t.SetProgress(1)
		t.FinishedAt = time.Now()
	})
	level.Info(logger).Log("msg", "clip completed", "output", outputPath, "elapsed", run.snapshot().Elapsed())

	return outputPath, nil
}

// titleFromPath recovers the sanitized title from <dir>/<title>_full.<ext>
func titleFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimSuffix(name, "_full")
}

func (c *Controller) notifyUpdate(task *model.ClipTask) {
	c.callbackMu.RLock()
	callback := c.onUpdate
	c.callbackMu.RUnlock()

	if callback != nil {
		callback(task)
	}
}

// run is the mutable state of one Execute call. Collaborators may report
// progress from their own goroutines, so the task is guarded.
type run struct {
	ctrl *Controller
	mu   sync.Mutex
	task *model.ClipTask
}

func (r *run) update(fn func(*model.ClipTask)) {
	r.mu.Lock()
	fn(r.task)
	snapshot := r.task.Clone()
	r.mu.Unlock()

	r.ctrl.notifyUpdate(snapshot)
}

func (r *run) snapshot() *model.ClipTask {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.task.Clone()
}

func (r *run) stage(status model.TaskStatus, message string) {
	r.update(func(t *model.ClipTask) {
		t.Status = status
		t.Message = message
		t.SetProgress(0)
	})
}

func (r *run) progress(fraction float64, message string) {
	r.update(func(t *model.ClipTask) {
		if !t.Status.IsActive() {
			return
		}
		if fraction >= 0 {
			t.SetProgress(fraction)
		}
		if message != "" {
			t.Message = message
		}
	})
}

func (r *run) fail(err *Error) error {
	r.update(func(t *model.ClipTask) {
		if err.Kind == Cancelled {
			t.Status = model.TaskStatusCancelled
		} else {
			t.Status = model.TaskStatusError
		}
		t.LastError = err.Error()
		t.Message = err.Error()
		t.FinishedAt = time.Now()
	})
	return err
}
