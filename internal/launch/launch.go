// Package launch locates the companion executable and starts it as a detached
// process.
package launch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/user/noki-launcher/internal/config"
	"github.com/user/noki-launcher/internal/procutil"
)

// Child describes a started process. The launcher keeps no handle to it.
type Child struct {
	PID       int
	Path      string
	StartedAt time.Time
}

// Error is returned when the OS refuses to create the process.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns the OS error code behind the failure, or 0 if there is none.
func (e *Error) Code() uint32 {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return uint32(errno)
	}
	return 0
}

// Locate returns the expected path of the target below exeDir.
func Locate(exeDir string, t config.Target) string {
	return filepath.Join(exeDir, t.Dir, t.Name)
}

// Resolve returns the expected path of the target next to the running
// executable.
func Resolve(t config.Target) (string, error) {
	dir, err := procutil.ExecutableDir()
	if err != nil {
		return "", err
	}
	return Locate(dir, t), nil
}

// Exists reports whether anything is present at path. A directory counts as
// present and fails later in Start with the OS error. A missing path is not an
// error; any other stat failure is.
func Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return true, nil
}

// Start launches the executable at path with no arguments and returns as soon
// as the process exists.
func Start(path string) (*Child, error) {
	pid, err := start(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return &Child{PID: pid, Path: path, StartedAt: time.Now()}, nil
}
