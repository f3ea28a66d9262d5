package utils

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// LevelTrace sits below Debug. The runner logs every rendered frame at this
// level, the engine logs every tick at Debug.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel turns the log_level setting into a slog level. Anything other
// than debug or trace runs at info, which only reports start, stop and why a
// game ended.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewLogger returns a text logger writing to w at the named level. Trace
// records are labelled TRACE instead of slog's default DEBUG-4.
func NewLogger(level string, w io.Writer) *slog.Logger {
	labelTrace := func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key != slog.LevelKey {
			return attr
		}
		if l, ok := attr.Value.Any().(slog.Level); ok && l == LevelTrace {
			attr.Value = slog.StringValue("TRACE")
		}
		return attr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: labelTrace,
	}))
}

// OpenLogOutput returns the writer logs should go to. A full-screen renderer
// owns the terminal, so without a log file its logs are discarded; otherwise
// they go to stderr. The returned close func is never nil.
func OpenLogOutput(path string, screen bool) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		if screen {
			return io.Discard, noop, nil
		}
		return os.Stderr, noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, errors.Wrapf(err, "[OpenLogOutput] failed to create directory for: %+v", path)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, noop, errors.Wrapf(err, "[OpenLogOutput] failed to open file: %+v", path)
	}
	return f, f.Close, nil
}
