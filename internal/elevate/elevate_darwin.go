//go:build darwin

package elevate

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// IsAdmin returns true if the current process is running as root.
func IsAdmin() bool {
	return os.Geteuid() == 0
}

// RunAsAdmin starts the current executable again through osascript, which
// shows the native authorization dialog.
func RunAsAdmin() error {
	exe, args, err := relaunchTarget()
	if err != nil {
		return err
	}

	osascript, err := exec.LookPath("osascript")
	if err != nil {
		return fmt.Errorf("osascript not available; please run as root")
	}

	cmd := exec.Command(osascript, "-e", appleScript(exe, args))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start osascript: %w", err)
	}
	return cmd.Process.Release()
}

// appleScript builds a "do shell script" statement that runs exe in the
// background with administrator privileges.
func appleScript(exe string, args []string) string {
	parts := []string{quoted(exe)}
	for _, a := range args {
		parts = append(parts, quoted(a))
	}
	shellCmd := strings.Join(parts, " ") + " >/dev/null 2>&1 &"
	return fmt.Sprintf(`do shell script "%s" with administrator privileges`, escapeAppleScript(shellCmd))
}

// quoted wraps a string in single quotes for shell usage.
func quoted(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// escapeAppleScript escapes a string for use inside an AppleScript double-quoted string.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
