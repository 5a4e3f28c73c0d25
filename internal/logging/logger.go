// Package logging provides categorized structured logging for querylens.
// Each subsystem logs through a named zap logger; when debug mode is on,
// records are additionally written to a rotated file under the workspace.
package logging

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Category names a logging subsystem.
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup and configuration
	CategoryIntent Category = "intent" // Query intent extraction and heuristics
	CategoryAPI    Category = "api"    // Model provider calls
	CategoryFields Category = "fields" // Metadata field registry
	CategoryCLI    Category = "cli"    // Command-line entry points
)

// Options controls logger construction.
type Options struct {
	// Debug enables debug-level output and file logging.
	Debug bool
	// Workspace is the directory under which .querylens/logs is created.
	// Empty disables file output.
	Workspace string
	// MaxSizeMB caps the log file size before rotation. Zero means 20.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept. Zero means 3.
	MaxBackups int
}

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	loggers = make(map[Category]*zap.Logger)
)

// Initialize builds the root logger. Safe to call more than once; later
// calls replace the previous configuration.
func Initialize(opts Options) error {
	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			level,
		),
	}

	if opts.Debug && opts.Workspace != "" {
		logsDir := filepath.Join(opts.Workspace, ".querylens", "logs")
		if err := os.MkdirAll(logsDir, 0o755); err != nil {
			return err
		}
		maxSize := opts.MaxSizeMB
		if maxSize == 0 {
			maxSize = 20
		}
		maxBackups := opts.MaxBackups
		if maxBackups == 0 {
			maxBackups = 3
		}
		rotated := &lumberjack.Logger{
			Filename:   filepath.Join(logsDir, "querylens.log"),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(rotated),
			zapcore.DebugLevel,
		))
	}

	mu.Lock()
	defer mu.Unlock()
	root = zap.New(zapcore.NewTee(cores...))
	loggers = make(map[Category]*zap.Logger)
	return nil
}

// Get returns the logger for a category. Before Initialize it is a no-op
// logger, so library code can log unconditionally.
func Get(cat Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[cat]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[cat]; ok {
		return l
	}
	l := root.Named(string(cat))
	loggers[cat] = l
	return l
}

// Sync flushes buffered records. Called before process exit.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}
