// Package logging provides categorized zap loggers for trisolve.
// Each subsystem logs through a named child of one root logger; categories
// switched off in the config get a no-op logger instead.
package logging

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trisolve/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config loading
	CategorySolver Category = "solver" // Engine calls from the CLI and form
	CategoryBatch  Category = "batch"  // Job file runs
	CategoryWatch  Category = "watch"  // Job file watcher
	CategoryForm   Category = "form"   // Interactive form
	CategoryRender Category = "render" // Text, markdown and SVG output
)

var (
	mu   sync.RWMutex
	root = zap.NewNop()
	cfg  config.LoggingConfig
)

// Setup builds the root logger from cfg. verbose forces debug level.
// The returned logger should be synced at shutdown.
func Setup(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if lc.File != "" {
		zc.OutputPaths = append(zc.OutputPaths, lc.File)
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	Use(logger, lc)
	return logger, nil
}

// Use installs logger as the root, filtering categories through lc.
func Use(logger *zap.Logger, lc config.LoggingConfig) {
	if logger == nil {
		logger = zap.NewNop()
	}
	mu.Lock()
	defer mu.Unlock()
	root = logger
	cfg = lc
}

// Reset restores the silent default.
func Reset() {
	Use(nil, config.LoggingConfig{})
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.IsCategoryEnabled(string(category))
}

// Get returns the logger for a category, or a no-op logger when the
// category is disabled.
func Get(category Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return root.Named(string(category))
}

// Sync flushes the root logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}

// Timer helps measure operation duration
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category: category,
		op:       operation,
		start:    time.Now(),
	}
}

// Stop ends the timer and logs the duration at debug level.
func (t *Timer) Stop(fields ...zap.Field) time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug(t.op+" completed", append(fields, zap.Duration("elapsed", elapsed))...)
	return elapsed
}

// StopWithThreshold logs a warning if the duration exceeds threshold.
func (t *Timer) StopWithThreshold(threshold time.Duration, fields ...zap.Field) time.Duration {
	elapsed := time.Since(t.start)
	fields = append(fields, zap.Duration("elapsed", elapsed))
	if elapsed > threshold {
		Get(t.category).Warn(t.op+" was slow", append(fields, zap.Duration("threshold", threshold))...)
	} else {
		Get(t.category).Debug(t.op+" completed", fields...)
	}
	return elapsed
}
