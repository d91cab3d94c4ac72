// Package logging builds the go-kit loggers used across the application.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Output formats
const (
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// Level names
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config selects the level and format of the process logger
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig logs info and above as logfmt
func DefaultConfig() Config {
	return Config{Level: LevelInfo, Format: FormatLogfmt}
}

// New returns a leveled logger writing to w, or stderr when w is nil
func New(cfg Config, w io.Writer) log.Logger {
	if w == nil {
		w = os.Stderr
	}

	var logger log.Logger
	if strings.EqualFold(cfg.Format, FormatJSON) {
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}

	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, levelOption(cfg.Level))
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l log.Logger) log.Logger {
	if l == nil {
		return log.NewNopLogger()
	}
	return l
}

func levelOption(name string) level.Option {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LevelDebug:
		return level.AllowDebug()
	case LevelWarn:
		return level.AllowWarn()
	case LevelError:
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// LeveledLogger adapts a go-kit logger to the msg + key/value interface
// used by go-retryablehttp.
type LeveledLogger struct {
	logger log.Logger
}

// NewLeveledLogger wraps l
func NewLeveledLogger(l log.Logger) *LeveledLogger {
	return &LeveledLogger{logger: OrNop(l)}
}

func (l *LeveledLogger) Error(msg string, keysAndValues ...interface{}) {
	_ = level.Error(l.logger).Log(append([]interface{}{"msg", msg}, keysAndValues...)...)
}

func (l *LeveledLogger) Info(msg string, keysAndValues ...interface{}) {
	_ = level.Info(l.logger).Log(append([]interface{}{"msg", msg}, keysAndValues...)...)
}

func (l *LeveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	_ = level.Debug(l.logger).Log(append([]interface{}{"msg", msg}, keysAndValues...)...)
}

func (l *LeveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	_ = level.Warn(l.logger).Log(append([]interface{}{"msg", msg}, keysAndValues...)...)
}
