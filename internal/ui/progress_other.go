//go:build !windows

package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/user/noki-launcher/internal/config"
	"github.com/user/noki-launcher/internal/core"
	"github.com/user/noki-launcher/internal/logger"
)

// consoleView prints progress lines instead of drawing a window.
type consoleView struct {
	w       io.Writer
	outcome Outcome
}

// Run prints progress for seq to stdout until the sequence ends.
func Run(cfg *config.Config, seq *core.Sequence) (Outcome, error) {
	fmt.Fprintln(os.Stdout, cfg.Window.Title)

	updates := make(chan core.Update)
	logger.SafeGo("launch-sequence", func() {
		seq.Run(context.Background(), updates)
	})

	view := &consoleView{w: os.Stdout}
	Forward(updates, func(f func()) { f() }, view)
	return view.outcome, nil
}

func (v *consoleView) SetProgress(percent int, message string) {
	logger.Debug("Progress %d%%: %s", percent, message)
	fmt.Fprintf(v.w, "[%3d%%] %s\n", percent, message)
}

func (v *consoleView) Fail(r *core.Report) {
	v.outcome = OutcomeFailed
	ShowError(r.Text())
}

func (v *consoleView) Close(o Outcome) {
	v.outcome = o
}
