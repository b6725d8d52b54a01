//go:build windows

package ui

import (
	"os"

	"github.com/lxn/walk"

	"github.com/user/noki-launcher/internal/icon"
	"github.com/user/noki-launcher/internal/logger"
)

// createWindowIcon builds a walk.Icon from the rendered launcher icon.
func createWindowIcon() *walk.Icon {
	icoData, err := icon.ICO()
	if err != nil {
		logger.Warning("Failed to render window icon: %v", err)
		return nil
	}

	tmpFile, err := os.CreateTemp("", "noki-launcher-*.ico")
	if err != nil {
		return nil
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(icoData); err != nil {
		tmpFile.Close()
		return nil
	}
	tmpFile.Close()

	ic, err := walk.NewIconFromFile(tmpPath)
	if err != nil {
		return nil
	}
	return ic
}
