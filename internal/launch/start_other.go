//go:build !windows

package launch

import (
	"os"
	"os/exec"

	"github.com/user/noki-launcher/internal/procutil"
)

// start runs the executable in its own session and releases the process so
// nothing is left to reap it from this side.
func start(path string) (int, error) {
	cmd := command(path)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return 0, err
	}
	return pid, nil
}

// command builds the detached child. It shares the launcher's standard
// streams the way an inherited console would.
func command(path string) *exec.Cmd {
	cmd := procutil.Detach(exec.Command(path))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}
