package core

import (
	"errors"
	"fmt"

	"github.com/user/noki-launcher/internal/launch"
)

// State represents the stage the launch sequence is in.
type State string

const (
	StateInitializing State = "initializing"
	StateChecking     State = "checking"
	StateLaunching    State = "launching"
	StateLaunched     State = "launched"
	StateFailed       State = "failed"
)

// Update is one progress notification sent from the worker to the UI. Once
// sent, the receiver owns it.
type Update struct {
	State   State
	Percent int
	Message string
	Report  *Report       // set when State == StateFailed
	Child   *launch.Child // set when State == StateLaunched
}

// Terminal reports whether no further updates follow.
func (u Update) Terminal() bool {
	return u.State == StateLaunched || u.State == StateFailed
}

// ReportKind classifies a failed run.
type ReportKind string

const (
	KindTargetMissing ReportKind = "target-missing"
	KindLaunchFailed  ReportKind = "launch-failed"
	KindUnexpected    ReportKind = "unexpected"
)

// Report describes why a run failed.
type Report struct {
	Kind ReportKind
	Path string
	Code uint32 // OS error code, 0 if not applicable
	Err  error
}

func (r *Report) Error() string {
	switch r.Kind {
	case KindTargetMissing:
		return fmt.Sprintf("target does not exist: %s", r.Path)
	case KindLaunchFailed:
		return fmt.Sprintf("failed to launch %s (code %d): %v", r.Path, r.Code, r.Err)
	default:
		return fmt.Sprintf("unexpected failure: %v", r.Err)
	}
}

func (r *Report) Unwrap() error {
	return r.Err
}

// Text returns the message shown to the user in the error dialog.
func (r *Report) Text() string {
	switch r.Kind {
	case KindTargetMissing:
		return fmt.Sprintf(msgTargetMissing, r.Path)
	case KindLaunchFailed:
		return fmt.Sprintf(msgLaunchFailed, r.Path, r.Code)
	default:
		return fmt.Sprintf(msgUnexpected, r.Err)
	}
}

func missingReport(path string) *Report {
	return &Report{Kind: KindTargetMissing, Path: path}
}

func launchReport(path string, err error) *Report {
	r := &Report{Kind: KindLaunchFailed, Path: path, Err: err}
	var launchErr *launch.Error
	if errors.As(err, &launchErr) {
		r.Code = launchErr.Code()
	}
	return r
}

func unexpectedReport(err error) *Report {
	return &Report{Kind: KindUnexpected, Err: err}
}
