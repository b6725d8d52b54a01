//go:build windows

package logger

import (
	"os"

	"golang.org/x/sys/windows"
)

// redirectStderr points the process stderr at the log file so runtime panics
// of a GUI-subsystem binary are not lost.
func redirectStderr(f *os.File) {
	if err := windows.SetStdHandle(windows.STD_ERROR_HANDLE, windows.Handle(f.Fd())); err != nil {
		return
	}
	os.Stderr = f
}
