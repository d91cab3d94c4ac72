package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytget/ytdlp/v2"
	"github.com/ytget/ytdlp/errs"

	"github.com/ytget/yt-clipper/internal/config"
)

// fakeSource simulates ytdlp per player client
type fakeSource struct {
	fs         afero.Fs
	title      string
	resolveErr map[string]error
	fetchErr   map[string]error
	partial    bool
	noFile     bool
	updates    []ytdlp.Progress

	resolved []Attempt
	fetched  []string
}

func (f *fakeSource) Resolve(ctx context.Context, url string, attempt Attempt) (*ytdlp.VideoInfo, error) {
	f.resolved = append(f.resolved, attempt)
	if err := f.resolveErr[attempt.Client]; err != nil {
		return nil, err
	}
	return &ytdlp.VideoInfo{ID: "abc123", Title: f.title}, nil
}

// Fetch behaves like ytdlp: bytes are appended to <out>.tmp and the file is
// renamed to <out> only when the stream completes.
func (f *fakeSource) Fetch(ctx context.Context, url string, attempt Attempt, outputPath string, progress func(ytdlp.Progress)) error {
	f.fetched = append(f.fetched, outputPath)
	if f.noFile {
		return nil
	}

	tmp := outputPath + PartialSuffix
	if err := f.fetchErr[attempt.Client]; err != nil {
		if f.partial {
			_ = appendFile(f.fs, tmp, "["+attempt.Client+"-part]")
		}
		return err
	}
	for _, p := range f.updates {
		progress(p)
	}
	if err := appendFile(f.fs, tmp, "["+attempt.Client+"-stream]"); err != nil {
		return err
	}
	return f.fs.Rename(tmp, outputPath)
}

func appendFile(fs afero.Fs, path, data string) error {
	file, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.WriteString(data)
	return err
}

var fixedNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestService(t *testing.T, source *fakeSource, mutate ...func(*config.Options)) *Service {
	t.Helper()
	opts := config.DefaultOptions()
	opts.DownloadDir = "/clips"
	for _, m := range mutate {
		m(&opts)
	}

	fs := afero.NewMemMapFs()
	source.fs = fs
	s := newService(opts, nil, source, fs)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestDownload_FirstClientSucceeds(t *testing.T) {
	source := &fakeSource{title: "My Video: Live!"}
	service := newTestService(t, source)

	path, err := service.Download(context.Background(), "https://youtu.be/abc123", nil)

	require.NoError(t, err)
	assert.Equal(t, "/clips/My Video_ Live_full.mp4", path)
	require.Len(t, source.resolved, 1)
	assert.Equal(t, "ANDROID", source.resolved[0].Client)
	assert.Equal(t, "20.10.38", source.resolved[0].Version)

	exists, _ := afero.Exists(service.fs, path)
	assert.True(t, exists)
}

func TestDownload_FallsBackToNextClient(t *testing.T) {
	source := &fakeSource{
		title:      "Song",
		resolveErr: map[string]error{"ANDROID": errors.New("get player response failed: 403")},
	}
	service := newTestService(t, source)

	path, err := service.Download(context.Background(), "https://youtu.be/abc123", nil)

	require.NoError(t, err)
	assert.Equal(t, "/clips/Song_full.mp4", path)
	clients := []string{source.resolved[0].Client, source.resolved[1].Client}
	assert.Equal(t, []string{"ANDROID", "WEB"}, clients)
	assert.Len(t, source.fetched, 1)
}

func TestDownload_AllClientsFail(t *testing.T) {
	source := &fakeSource{
		title: "Song",
		resolveErr: map[string]error{
			"ANDROID": errs.ErrPrivate,
		},
		fetchErr: map[string]error{
			"WEB": errors.New("download failed: 403"),
			"IOS": errors.New("download failed: EOF"),
		},
		partial: true,
	}
	service := newTestService(t, source)

	_, err := service.Download(context.Background(), "https://youtu.be/abc123", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPrivate)

	var attemptsErr *AttemptsError
	require.ErrorAs(t, err, &attemptsErr)
	assert.Len(t, attemptsErr.Attempts, 3)
	assert.Equal(t, "all player clients failed (ANDROID: video is private; WEB: download failed: 403; IOS: download failed: EOF)", err.Error())

	exists, _ := afero.Exists(service.fs, "/clips/Song_full.mp4")
	assert.False(t, exists, "partial download should be removed")
	exists, _ = afero.Exists(service.fs, "/clips/Song_full.mp4"+PartialSuffix)
	assert.False(t, exists, "in-progress file should be removed")
}

func TestDownload_FallbackDoesNotResumeFailedClient(t *testing.T) {
	source := &fakeSource{
		title:    "Song",
		fetchErr: map[string]error{"ANDROID": errors.New("connection reset")},
		partial:  true,
	}
	service := newTestService(t, source)

	path, err := service.Download(context.Background(), "https://youtu.be/abc123", nil)

	require.NoError(t, err)
	assert.Equal(t, "/clips/Song_full.mp4", path)
	content, err := afero.ReadFile(service.fs, path)
	require.NoError(t, err)
	assert.Equal(t, "[WEB-stream]", string(content))

	exists, _ := afero.Exists(service.fs, path+PartialSuffix)
	assert.False(t, exists)
}

func TestDownload_StaleTmpFromEarlierRunIsDiscarded(t *testing.T) {
	source := &fakeSource{title: "Song"}
	service := newTestService(t, source)
	require.NoError(t, afero.WriteFile(service.fs, "/clips/Song_full.mp4"+PartialSuffix, []byte("[stale]"), 0644))

	path, err := service.Download(context.Background(), "https://youtu.be/abc123", nil)

	require.NoError(t, err)
	content, err := afero.ReadFile(service.fs, path)
	require.NoError(t, err)
	assert.Equal(t, "[ANDROID-stream]", string(content))
}

func TestDownload_EmptyTitleUsesTimestamp(t *testing.T) {
	source := &fakeSource{title: "  "}
	service := newTestService(t, source)

	path, err := service.Download(context.Background(), "https://youtu.be/abc123", nil)

	require.NoError(t, err)
	assert.Equal(t, "/clips/yt_video_20250102_030405_full.mp4", path)
}

func TestDownload_NoFileWritten(t *testing.T) {
	source := &fakeSource{title: "Song", noFile: true}
	service := newTestService(t, source, func(o *config.Options) {
		o.PlayerClients = []string{"web"}
	})

	_, err := service.Download(context.Background(), "https://youtu.be/abc123", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no file written")
}

func TestDownload_Cancelled(t *testing.T) {
	source := &fakeSource{title: "Song"}
	service := newTestService(t, source)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Download(ctx, "https://youtu.be/abc123", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, source.resolved)
}

func TestDownload_Progress(t *testing.T) {
	source := &fakeSource{
		title: "Song",
		updates: []ytdlp.Progress{
			{DownloadedSize: 512, TotalSize: 0},
			{DownloadedSize: 1024 * 1024, TotalSize: 4 * 1024 * 1024, Percent: 25},
		},
	}
	service := newTestService(t, source)

	var fractions []float64
	var messages []string
	_, err := service.Download(context.Background(), "https://youtu.be/abc123", func(f float64, msg string) {
		fractions = append(fractions, f)
		messages = append(messages, msg)
	})

	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1, 0.25}, fractions)
	assert.Equal(t, `Downloading "Song" via ANDROID`, messages[0])
	assert.Equal(t, "512 B", messages[1])
	assert.Equal(t, "1.0 MB / 4.0 MB", messages[2])
}

func TestAttempts(t *testing.T) {
	service := newTestService(t, &fakeSource{}, func(o *config.Options) {
		o.Quality = config.QualityMedium
		o.PlayerClients = []string{"ios", "tv_custom"}
	})

	attempts := service.Attempts()

	assert.Equal(t, []Attempt{
		{Client: "IOS", Version: "20.10.4", Format: FormatMedium, Ext: OutputExt},
		{Client: "TV_CUSTOM", Version: "", Format: FormatMedium, Ext: OutputExt},
	}, attempts)
}

func TestFormatSelector(t *testing.T) {
	tests := []struct {
		preset   config.QualityPreset
		expected string
	}{
		{config.QualityBest, "best"},
		{config.QualityMedium, "height<=720"},
		{config.QualityLow, "height<=480"},
		{"unknown", "best"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatSelector(tt.preset), string(tt.preset))
	}
}

func TestNewService(t *testing.T) {
	opts := config.DefaultOptions()
	service := NewService(opts, nil)

	source, ok := service.source.(*ytdlpSource)
	require.True(t, ok)
	require.NotNil(t, source.httpClient)
	assert.Equal(t, config.DefaultPlayerClients, service.clients)
	assert.Equal(t, FormatBest, service.format)
}

func TestAttemptsError_Empty(t *testing.T) {
	assert.Equal(t, "no player clients configured", (&AttemptsError{}).Error())
}

func TestFailureReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errs.ErrPrivate, "video is private"},
		{fmt.Errorf("resolve: %w", errs.ErrGeoBlocked), "geo blocked"},
		{&AttemptsError{Attempts: []AttemptError{{Client: "WEB", Err: errs.ErrRateLimited}}}, "rate limited"},
		{errors.New("connection reset"), "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FailureReason(tt.err), tt.err.Error())
	}
}
