// Package elevate checks for and requests administrator privileges.
//
// RunAsAdmin only dispatches the request. The caller decides what happens to
// the unprivileged instance; the launcher exits with status 0 once the request
// is accepted and never waits for the user's answer.
package elevate

import (
	"os"

	"github.com/user/noki-launcher/internal/procutil"
)

// relaunchTarget returns the executable path and the arguments the elevated
// instance should receive.
func relaunchTarget() (string, []string, error) {
	exe, err := procutil.ExecutablePath()
	if err != nil {
		return "", nil, err
	}
	return exe, os.Args[1:], nil
}
