//go:build linux

package elevate

import (
	"fmt"
	"os"
	"os/exec"
)

// IsAdmin returns true if the current process is running as root.
func IsAdmin() bool {
	return os.Geteuid() == 0
}

// RunAsAdmin starts the current executable again through pkexec, which shows
// the desktop's polkit authentication dialog.
func RunAsAdmin() error {
	exe, args, err := relaunchTarget()
	if err != nil {
		return err
	}

	path, err := exec.LookPath("pkexec")
	if err != nil {
		return fmt.Errorf("pkexec not found; please run as root")
	}

	cmd := exec.Command(path, append([]string{exe}, args...)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start pkexec: %w", err)
	}
	return cmd.Process.Release()
}
