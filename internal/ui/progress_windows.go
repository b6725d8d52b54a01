//go:build windows

package ui

import (
	"context"
	"fmt"

	"github.com/lxn/walk"
	. "github.com/lxn/walk/declarative"
	"github.com/lxn/win"

	"github.com/user/noki-launcher/internal/config"
	"github.com/user/noki-launcher/internal/core"
	"github.com/user/noki-launcher/internal/logger"
)

const (
	windowWidth  = 420
	windowHeight = 180
	fontFamily   = "Microsoft YaHei"
)

// progressWindow is the UI context handed to everything that touches the
// window. It is only used on the UI thread.
type progressWindow struct {
	mw      *walk.MainWindow
	status  *walk.Label
	bar     *walk.ProgressBar
	outcome Outcome
}

// Run creates the progress window, starts seq on a worker goroutine and
// blocks in the message loop until the window is closed. An error means the
// window could not be created.
func Run(cfg *config.Config, seq *core.Sequence) (Outcome, error) {
	pw, err := newProgressWindow(cfg.Window.Title)
	if err != nil {
		return OutcomeInterrupted, err
	}

	// The worker is not joined. If the user closes the window early the
	// process exits; the worker holds nothing that needs cleanup.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan core.Update)
	logger.SafeGo("launch-sequence", func() {
		seq.Run(ctx, updates)
	})
	logger.SafeGo("progress-forward", func() {
		outcome := Forward(updates, pw.mw.Synchronize, pw)
		logger.Info("Launch sequence finished: %s", outcome)
	})

	pw.mw.Run()
	return pw.outcome, nil
}

func newProgressWindow(title string) (*progressWindow, error) {
	pw := &progressWindow{}
	size := Size{Width: windowWidth, Height: windowHeight}

	if err := (MainWindow{
		AssignTo: &pw.mw,
		Title:    title,
		Size:     size,
		MinSize:  size,
		MaxSize:  size,
		Layout:   VBox{Margins: Margins{Left: 10, Top: 15, Right: 10, Bottom: 10}, Spacing: 10},
		Children: []Widget{
			Label{
				Text:          title,
				Font:          Font{Family: fontFamily, PointSize: 12, Bold: true},
				TextAlignment: AlignCenter,
			},
			Label{
				AssignTo:      &pw.status,
				Text:          core.InitialMessage,
				Font:          Font{Family: fontFamily, PointSize: 9},
				TextAlignment: AlignCenter,
			},
			Composite{
				Layout: HBox{Margins: Margins{Left: 40, Right: 40}},
				Children: []Widget{
					ProgressBar{
						AssignTo: &pw.bar,
						MinValue: 0,
						MaxValue: 100,
						MinSize:  Size{Height: 20},
					},
				},
			},
			VSpacer{},
		},
	}).Create(); err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	hwnd := pw.mw.Handle()
	fixWindowStyle(hwnd)
	centerOnScreen(hwnd)

	if icon := createWindowIcon(); icon != nil {
		pw.mw.SetIcon(icon)
	}

	return pw, nil
}

func (pw *progressWindow) SetProgress(percent int, message string) {
	pw.status.SetText(message)
	pw.bar.SetValue(percent)
}

func (pw *progressWindow) Fail(r *core.Report) {
	pw.outcome = OutcomeFailed
	walk.MsgBox(pw.mw, dialogTitle, r.Text(), walk.MsgBoxIconError|walk.MsgBoxOK)
	pw.mw.Close()
}

func (pw *progressWindow) Close(o Outcome) {
	pw.outcome = o
	pw.mw.Close()
}

// fixWindowStyle removes the sizing frame and maximize box; minimize and the
// system menu stay.
func fixWindowStyle(hwnd win.HWND) {
	style := win.GetWindowLong(hwnd, win.GWL_STYLE)
	style &^= win.WS_THICKFRAME | win.WS_MAXIMIZEBOX
	win.SetWindowLong(hwnd, win.GWL_STYLE, style)
	win.SetWindowPos(hwnd, 0, 0, 0, 0, 0,
		win.SWP_NOMOVE|win.SWP_NOSIZE|win.SWP_NOZORDER|win.SWP_FRAMECHANGED)
}

func centerOnScreen(hwnd win.HWND) {
	var rc win.RECT
	if !win.GetWindowRect(hwnd, &rc) {
		return
	}
	x := (win.GetSystemMetrics(win.SM_CXSCREEN) - (rc.Right - rc.Left)) / 2
	y := (win.GetSystemMetrics(win.SM_CYSCREEN) - (rc.Bottom - rc.Top)) / 2
	win.SetWindowPos(hwnd, 0, x, y, 0, 0, win.SWP_NOSIZE|win.SWP_NOZORDER)
}
