//go:build !windows

package logger

import "os"

// redirectStderr is a no-op outside Windows: a console is attached and the
// file sink already receives every entry.
func redirectStderr(_ *os.File) {}
