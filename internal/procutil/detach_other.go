//go:build !windows

package procutil

import (
	"os/exec"
	"syscall"
)

// Detach puts the command in its own session so it outlives the launcher and
// is not hit by signals sent to the launcher's process group.
func Detach(cmd *exec.Cmd) *exec.Cmd {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	return cmd
}
