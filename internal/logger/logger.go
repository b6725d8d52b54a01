// Package logger provides centralized logging for the launcher.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/user/noki-launcher/internal/config"
	"github.com/user/noki-launcher/internal/procutil"
)

var (
	logMutex sync.Mutex
	base     = zap.NewNop()
	sugar    = base.Sugar()
	logFile  *os.File
	logPath  string
)

// Init initializes the logger. Console output goes to stderr; when cfg.File
// is set, JSON lines are also appended to that file (relative paths resolve
// next to the executable) and stderr is redirected there so panics are kept.
func Init(cfg config.Logging) error {
	logMutex.Lock()
	defer logMutex.Unlock()

	level := parseLevel(cfg.Level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	// Console logging stays on even if the file sink cannot be opened.
	base = zap.New(console)
	sugar = base.Sugar()

	if cfg.File == "" {
		return nil
	}

	path := procutil.NextToExecutable(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	closeFileLocked()
	logFile = f
	logPath = path

	redirectStderr(f)

	base = zap.New(zapcore.NewTee(console, zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(f),
		level,
	)))
	sugar = base.Sugar()
	return nil
}

// Close flushes buffered entries and closes the log file.
func Close() {
	logMutex.Lock()
	defer logMutex.Unlock()
	_ = base.Sync()
	closeFileLocked()
}

func closeFileLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// L returns the structured logger.
func L() *zap.Logger {
	logMutex.Lock()
	defer logMutex.Unlock()
	return base
}

func current() *zap.SugaredLogger {
	logMutex.Lock()
	defer logMutex.Unlock()
	return sugar
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	current().Infof(format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	current().Errorf(format, args...)
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	current().Debugf(format, args...)
}

// Warning logs a warning message
func Warning(format string, args ...interface{}) {
	current().Warnf(format, args...)
}

// GetLogPath returns the path to the log file, or "" when file logging is off.
func GetLogPath() string {
	logMutex.Lock()
	defer logMutex.Unlock()
	return logPath
}

// Recover should be deferred at the top of every goroutine to catch panics.
// Usage: go func() { defer logger.Recover("myGoroutine"); ... }()
func Recover(name string) {
	if r := recover(); r != nil {
		L().Error("panic recovered",
			zap.String("goroutine", name),
			zap.Any("panic", r),
			zap.ByteString("stack", debug.Stack()))
		_ = L().Sync()
	}
}

// SafeGo launches a goroutine with panic recovery.
func SafeGo(name string, fn func()) {
	go func() {
		defer Recover(name)
		fn()
	}()
}
