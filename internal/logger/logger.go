package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultPath is the log file path, relative to the working directory (project root when run via go run ./cmd/pyramids).
const DefaultPath = "logs/pyramids.txt"

// Options configures where a Logger writes. Zero value keeps records in memory only.
type Options struct {
	// Path is the file records are appended to. Empty disables the file sink.
	Path string
	// Level is the minimum level recorded.
	Level slog.Level
	// Console receives a copy of every record (usually os.Stderr). Nil disables it.
	Console io.Writer
}

// Logger is the diagnostic channel of the renderer. It is a slog.Logger whose records are
// stored in memory, optionally echoed to a console writer and appended to a file on disk.
// Each stored entry is prefixed with [timestamp] using computer time.
type Logger struct {
	*slog.Logger
	sink *sink
}

// New returns a Logger for opts and ensures the log file directory exists.
func New(opts Options) *Logger {
	if opts.Path != "" {
		_ = os.MkdirAll(filepath.Dir(opts.Path), 0755)
	}
	s := &sink{path: opts.Path, console: opts.Console}
	h := slog.NewTextHandler(s, &slog.HandlerOptions{
		Level: opts.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// the sink stamps entries itself
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return &Logger{Logger: slog.New(h), sink: s}
}

// Lines returns a copy of all stored entries.
func (l *Logger) Lines() []string {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	out := make([]string, len(l.sink.lines))
	copy(out, l.sink.lines)
	return out
}

// Contains reports whether any stored entry contains substr.
func (l *Logger) Contains(substr string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// ParseLevel maps a config string (debug, info, warn, error) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(strings.TrimSpace(s)))
	return lvl, err
}

// sink receives one formatted record per Write from the slog text handler.
type sink struct {
	mu      sync.Mutex
	lines   []string
	path    string
	console io.Writer
}

func (s *sink) Write(p []byte) (int, error) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	text := strings.TrimRight(string(p), "\n")

	s.mu.Lock()
	defer s.mu.Unlock()

	stamped := make([]string, 0, 1)
	for _, line := range strings.Split(text, "\n") {
		stamped = append(stamped, "["+ts+"] "+line)
	}
	s.lines = append(s.lines, stamped...)
	out := strings.Join(stamped, "\n") + "\n"

	if s.console != nil {
		_, _ = io.WriteString(s.console, out)
	}
	if s.path == "" {
		return len(p), nil
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return len(p), nil
	}
	_, _ = f.WriteString(out)
	_ = f.Close()
	return len(p), nil
}
