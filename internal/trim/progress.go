package trim

import (
	"bytes"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ytget/yt-clipper/internal/model"
)

// ffmpeg -progress keys
const (
	ProgressTimePrefix = "out_time_us="
	ProgressEndLine    = "progress=end"
)

// stderrTailLines is how many diagnostic lines are kept for error messages
const stderrTailLines = 8

// progressMonitor receives ffmpeg's stderr, turns out_time_us lines into a
// fraction of the clip length and keeps the last diagnostic lines.
type progressMonitor struct {
	total    time.Duration
	progress model.ProgressFunc

	mu      sync.Mutex
	partial []byte
	tail    []string
	last    float64
}

func newProgressMonitor(total time.Duration, progress model.ProgressFunc) *progressMonitor {
	return &progressMonitor{total: total, progress: progress, last: -1}
}

func (m *progressMonitor) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.partial = append(m.partial, p...)
	for {
		idx := bytes.IndexByte(m.partial, '\n')
		if idx < 0 {
			break
		}
		line := strings.TrimSpace(string(m.partial[:idx]))
		m.partial = m.partial[idx+1:]
		m.handleLine(line)
	}

	return len(p), nil
}

func (m *progressMonitor) handleLine(line string) {
	if line == "" {
		return
	}

	// Parse progress line: out_time_us=123456
	if strings.HasPrefix(line, ProgressTimePrefix) {
		us, err := strconv.ParseInt(strings.TrimPrefix(line, ProgressTimePrefix), 10, 64)
		if err != nil || m.total <= 0 {
			return
		}
		fraction := float64(time.Duration(us)*time.Microsecond) / float64(m.total)
		if fraction > 1 {
			fraction = 1
		}
		m.report(fraction)
		return
	}

	if line == ProgressEndLine {
		m.report(1)
		return
	}

	if isProgressKey(line) {
		return
	}

	m.tail = append(m.tail, line)
	if len(m.tail) > stderrTailLines {
		m.tail = m.tail[len(m.tail)-stderrTailLines:]
	}
}

func (m *progressMonitor) report(fraction float64) {
	if fraction <= m.last {
		return
	}
	m.last = fraction
	if m.progress != nil {
		m.progress(fraction, "")
	}
}

// Tail returns the last diagnostic lines ffmpeg printed
func (m *progressMonitor) Tail() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := m.tail
	if len(m.partial) > 0 {
		if rest := strings.TrimSpace(string(m.partial)); rest != "" && !isProgressKey(rest) {
			lines = append(append([]string(nil), lines...), rest)
		}
	}
	return strings.Join(lines, "; ")
}

// isProgressKey matches key=value lines such as frame=12 or speed=1.2x
func isProgressKey(line string) bool {
	idx := strings.IndexByte(line, '=')
	return idx > 0 && !strings.ContainsAny(line[:idx], " \t:")
}
