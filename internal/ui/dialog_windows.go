//go:build windows

package ui

import (
	"github.com/lxn/walk"

	"github.com/user/noki-launcher/internal/logger"
)

// ShowError shows a modal error dialog with no owner window. It is used for
// failures that happen before or instead of the progress window.
func ShowError(message string) {
	logger.Error("%s", message)
	walk.MsgBox(nil, dialogTitle, message, walk.MsgBoxIconError|walk.MsgBoxOK)
}
