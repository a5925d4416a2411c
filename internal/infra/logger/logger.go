package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	dirName  = ".seek"
	fileName = "seek.log"
)

// Config controls where logs go and which attributes every record carries.
type Config struct {
	// Root is the workspace root. Empty means the current directory.
	Root  string
	Debug bool

	// Command is the invoked command path ("seek search"), attached to every record.
	Command string
	Version string
}

type sink struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu      sync.RWMutex
	current = discard()
)

func discard() sink {
	return sink{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// Dir is the directory holding seek.log for a workspace root.
func Dir(root string) string {
	return filepath.Join(root, dirName, "logs")
}

// Setup opens <root>/.seek/logs/seek.log for appending and installs a JSON
// logger whose records all carry the workspace and command. The returned
// cleanup closes the file and restores the discard logger.
func Setup(cfg Config) (func() error, error) {
	root := "."
	if cfg.Root != "" {
		root = filepath.Clean(cfg.Root)
	}

	dir := Dir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: utcTime,
	}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	l := slog.New(slog.NewJSONHandler(f, opts)).With(baseAttrs(root, cfg)...)

	mu.Lock()
	current = sink{log: l, file: f, path: path}
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return closeSink, nil
}

func baseAttrs(root string, cfg Config) []any {
	attrs := []any{"workspace", root}
	if cfg.Command != "" {
		attrs = append(attrs, "command", cfg.Command)
	}
	if cfg.Version != "" {
		attrs = append(attrs, "version", cfg.Version)
	}
	return attrs
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

func closeSink() error {
	mu.Lock()
	defer mu.Unlock()

	var err error
	if current.file != nil {
		err = current.file.Close()
	}
	current = discard()
	return err
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	current = discard()
}

// L returns the process logger. It discards everything until Setup succeeds.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current.log
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return current.path
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if current.file == nil {
		return errors.New("logger not initialized")
	}
	return nil
}
