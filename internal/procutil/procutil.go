// Package procutil holds small helpers about the running executable and the
// processes it spawns.
package procutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExecutablePath returns the absolute path of the running executable with
// symlinks resolved where possible.
func ExecutablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

// ExecutableDir returns the directory containing the running executable.
func ExecutableDir() (string, error) {
	exe, err := ExecutablePath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// NextToExecutable joins name onto the executable directory. Absolute names
// are returned unchanged. If the executable path is unknown, name is returned
// as is so it resolves against the working directory.
func NextToExecutable(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	dir, err := ExecutableDir()
	if err != nil {
		return name // fallback: current directory
	}
	return filepath.Join(dir, name)
}
