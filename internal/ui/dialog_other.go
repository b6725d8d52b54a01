//go:build !windows

package ui

import (
	"fmt"
	"io"
	"os"
)

// ShowError prints the message to stderr; there is no dialog outside Windows.
// It runs before the logger is set up, so it writes directly.
func ShowError(message string) {
	printError(os.Stderr, message)
}

func printError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s: %s\n", dialogTitle, message)
}
