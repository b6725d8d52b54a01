// Package ui shows launch progress and error dialogs.
package ui

import (
	"github.com/user/noki-launcher/internal/core"
)

// dialogTitle is the caption of every error dialog.
const dialogTitle = "启动器错误"

// Outcome is how a progress run ended.
type Outcome int

const (
	// OutcomeInterrupted means the run ended without a result, e.g. the
	// window was closed by the user.
	OutcomeInterrupted Outcome = iota
	OutcomeLaunched
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLaunched:
		return "launched"
	case OutcomeFailed:
		return "failed"
	default:
		return "interrupted"
	}
}

// View renders progress. Its methods are only called on the UI thread.
type View interface {
	SetProgress(percent int, message string)
	// Fail shows the report to the user and then closes the view.
	Fail(r *core.Report)
	// Close closes the view after a run that did not fail.
	Close(o Outcome)
}

// Forward drains updates and applies each one to view through post, which
// must run the function on the UI thread. Updates are applied in channel
// order. After the channel is closed the view is closed exactly once, by Fail
// or by Close.
func Forward(updates <-chan core.Update, post func(func()), view View) Outcome {
	outcome := OutcomeInterrupted
	var report *core.Report

	for u := range updates {
		switch u.State {
		case core.StateFailed:
			outcome = OutcomeFailed
			report = u.Report
		case core.StateLaunched:
			outcome = OutcomeLaunched
			fallthrough
		default:
			percent, message := u.Percent, u.Message
			post(func() {
				view.SetProgress(percent, message)
			})
		}
	}

	if outcome == OutcomeFailed {
		post(func() {
			view.Fail(report)
		})
		return outcome
	}

	final := outcome
	post(func() {
		view.Close(final)
	})
	return outcome
}
