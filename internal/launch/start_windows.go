//go:build windows

package launch

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// start creates the process with default flags, no inherited handles, the
// launcher's environment and working directory, then closes both handles so
// the child is not supervised.
func start(path string) (int, error) {
	appName, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	cmdLine, err := windows.UTF16PtrFromString(windows.EscapeArg(path))
	if err != nil {
		return 0, err
	}

	si := &windows.StartupInfo{}
	si.Cb = uint32(unsafe.Sizeof(*si))
	pi := &windows.ProcessInformation{}

	if err := windows.CreateProcess(
		appName,
		cmdLine,
		nil,
		nil,
		false,
		0,
		nil,
		nil,
		si,
		pi,
	); err != nil {
		return 0, err
	}

	windows.CloseHandle(pi.Thread)
	windows.CloseHandle(pi.Process)

	return int(pi.ProcessId), nil
}
